package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatSubCol copies the listed columns of M, in the listed order.
func MatSubCol(M mat.Matrix, ColIndices []int) (R *mat.Dense) {
	var (
		nr, nc = M.Dims()
	)
	R = mat.NewDense(nr, len(ColIndices), nil)
	colSlice := make([]float64, nr)
	for j, valI := range ColIndices {
		if valI > nc-1 || valI < 0 {
			panic(fmt.Errorf("unable to subset column %d from matrix with %d columns", valI, nc))
		}
		mat.Col(colSlice, valI, M)
		R.SetCol(j, colSlice)
	}
	return
}

// MatDeleteCols drops columns [from, to) from M.
func MatDeleteCols(M mat.Matrix, from, to int) (R *mat.Dense) {
	var (
		_, nc = M.Dims()
		keep  = make([]int, 0, nc)
	)
	for j := 0; j < nc; j++ {
		if j < from || j >= to {
			keep = append(keep, j)
		}
	}
	return MatSubCol(M, keep)
}
