package gct

// Transpose returns the dataset with the matrix transposed and the two axes
// swapped as whole units: row ids become column ids and the descriptor
// tables trade places with no field renaming. Transposing twice yields a
// value equal to the original.
//
// Total: a nil input yields nil; there are no failure modes.
// Complexity: O(rows·cols).
func Transpose(d *Dataset) *Dataset {
	if d == nil {
		return nil
	}

	return newUnchecked(d.mat.T(), d.colIDs, d.rowIDs, d.colDesc, d.rowDesc)
}
