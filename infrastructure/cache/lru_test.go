package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func testFace() font.Face {
	return basicfont.Face7x13
}

func TestFaceCache_SetAndGet(t *testing.T) {
	cache := NewFaceCache(4)
	face := testFace()

	cache.Set("/fonts/a.ttf", 150, face)

	got, ok := cache.Get("/fonts/a.ttf", 150)
	require.True(t, ok)
	assert.Equal(t, face, got)
}

func TestFaceCache_MissOnDifferentSize(t *testing.T) {
	cache := NewFaceCache(4)
	cache.Set("/fonts/a.ttf", 150, testFace())

	_, ok := cache.Get("/fonts/a.ttf", 80)

	assert.False(t, ok)
}

func TestFaceCache_MissOnDifferentPath(t *testing.T) {
	cache := NewFaceCache(4)
	cache.Set("/fonts/a.ttf", 150, testFace())

	_, ok := cache.Get("/fonts/b.ttf", 150)

	assert.False(t, ok)
}

func TestFaceCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewFaceCache(2)
	cache.Set("a", 1, testFace())
	cache.Set("b", 2, testFace())

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := cache.Get("a", 1)
	require.True(t, ok)

	cache.Set("c", 3, testFace())

	_, ok = cache.Get("b", 2)
	assert.False(t, ok)
	_, ok = cache.Get("a", 1)
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Size())
}

func TestFaceCache_UpdateDoesNotGrow(t *testing.T) {
	cache := NewFaceCache(2)
	cache.Set("a", 1, testFace())
	cache.Set("a", 1, testFace())

	assert.Equal(t, 1, cache.Size())
}

func TestNewFaceCache_ClampsCapacity(t *testing.T) {
	cache := NewFaceCache(0)
	cache.Set("a", 1, testFace())
	cache.Set("b", 2, testFace())

	assert.Equal(t, 1, cache.Size())
}
