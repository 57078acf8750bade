package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestMatSubCol(t *testing.T) {
	M := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	R := MatSubCol(M, []int{2, 0})
	r, c := R.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{3, 1, 6, 4}, R.RawMatrix().Data)

	assert.Panics(t, func() { MatSubCol(M, []int{3}) })
}

func TestMatDeleteCols(t *testing.T) {
	M := mat.NewDense(2, 6, []float64{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	})
	R := MatDeleteCols(M, 2, 5)
	assert.Equal(t, []float64{1, 2, 6, 7, 8, 12}, R.RawMatrix().Data)

	// An empty range keeps everything
	R = MatDeleteCols(M, 3, 3)
	assert.True(t, mat.Equal(M, R))
}

func TestGetMemUsage(t *testing.T) {
	assert.True(t, strings.HasPrefix(GetMemUsage(), "Alloc = "))
}
