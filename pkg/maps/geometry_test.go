package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBoxSinglePoint(t *testing.T) {
	box, err := BoundingBox([][]float64{{151.2, -33.8}}, 0.04)

	assert.NoError(t, err)
	assert.InDelta(t, -33.84, box.MinLat, 1e-9)
	assert.InDelta(t, 151.16, box.MinLon, 1e-9)
	assert.InDelta(t, -33.76, box.MaxLat, 1e-9)
	assert.InDelta(t, 151.24, box.MaxLon, 1e-9)
}

func TestBoundingBoxSpansAllPoints(t *testing.T) {
	coords := [][]float64{
		{151.2, -33.8},
		{150.3, -34.5},
		{151.8, -32.9},
	}

	box, err := BoundingBox(coords, 0.0)

	assert.NoError(t, err)
	assert.Equal(t, -34.5, box.MinLat)
	assert.Equal(t, 150.3, box.MinLon)
	assert.Equal(t, -32.9, box.MaxLat)
	assert.Equal(t, 151.8, box.MaxLon)
}

func TestBoundingBoxEmptyGeometry(t *testing.T) {
	_, err := BoundingBox(nil, 0.04)
	assert.Error(t, err)
}

func TestBoundingBoxSkipsMalformedElements(t *testing.T) {
	coords := [][]float64{
		{151.2},
		{151.2, -33.8},
		{},
		{150.3, -34.5},
	}

	box, err := BoundingBox(coords, 0.0)

	assert.NoError(t, err)
	assert.Equal(t, -34.5, box.MinLat)
	assert.Equal(t, 150.3, box.MinLon)
	assert.Equal(t, -33.8, box.MaxLat)
	assert.Equal(t, 151.2, box.MaxLon)

	// A geometry with no complete pairs is rejected, not indexed
	_, err = BoundingBox([][]float64{{151.2}, {}}, 0.0)
	assert.Error(t, err)
}

func TestIsValidCoordinates(t *testing.T) {
	assert.True(t, IsValidCoordinates(-33.8, 151.2))
	assert.True(t, IsValidCoordinates(90, 180))
	assert.False(t, IsValidCoordinates(90.1, 0))
	assert.False(t, IsValidCoordinates(0, -180.5))
}
