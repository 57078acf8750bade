package geometry

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxSingleRow(t *testing.T) {
	bb, err := ComputeBoundingBox([][]mgl32.Vec3{{{1, 2, 3}}})
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, bb.Min)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, bb.Max)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, bb.Center)
	assert.Equal(t, mgl32.Vec3{}, bb.Size())
}

func TestBoundingBoxAcrossArrays(t *testing.T) {
	a := []mgl32.Vec3{{0, 0, 0}, {1, -2, 0.5}}
	b := []mgl32.Vec3{{-1, 4, 2}}
	bb, err := ComputeBoundingBox([][]mgl32.Vec3{a, nil, b})
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{-1, -2, 0}, bb.Min)
	assert.Equal(t, mgl32.Vec3{1, 4, 2}, bb.Max)
	assert.Equal(t, mgl32.Vec3{0, 1, 1}, bb.Center)
	assert.Equal(t, mgl32.Vec3{2, 6, 2}, bb.Size())
}

func TestBoundingBoxEmpty(t *testing.T) {
	_, err := ComputeBoundingBox(nil)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	_, err = ComputeBoundingBox([][]mgl32.Vec3{{}, nil})
	assert.True(t, errors.Is(err, ErrEmptyInput))

	_, err = BoundingBoxOf()
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestBoundingBoxOf(t *testing.T) {
	g1 := &ViewGeometry{Vertices: []mgl32.Vec3{{0, 0, 0}, {2, 2, 2}}}
	g2 := &ViewGeometry{Vertices: []mgl32.Vec3{{-2, 0, 4}}}
	bb, err := BoundingBoxOf(g1, nil, g2)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{-2, 0, 0}, bb.Min)
	assert.Equal(t, mgl32.Vec3{2, 2, 4}, bb.Max)
	assert.Equal(t, mgl32.Vec3{0, 1, 2}, bb.Center)
}
