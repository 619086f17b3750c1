// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package envelope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name           string
		x0, y0, x1, y1 float64
		expected       Box
	}{
		{"Zero", 0, 0, 0, 0, Box{}},
		{"Ordered", -1, -2, 3, 4, Box{-1, -2, 3, 4}},
		{"Reversed", 3, 4, -1, -2, Box{-1, -2, 3, 4}},
		{"Mixed", 3, -2, -1, 4, Box{-1, -2, 3, 4}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := New(testCase.x0, testCase.y0, testCase.x1, testCase.y1)

			assert.Equal(t, testCase.expected, actual)
			assert.True(t, actual.Valid())
		})
	}
}

func TestFromCoord(t *testing.T) {
	b := FromCoord(Coord{X: 5.5, Y: -1})

	assert.Equal(t, Box{5.5, -1, 5.5, -1}, b)
	assert.True(t, b.Valid())
	assert.Equal(t, 0.0, b.Width())
	assert.Equal(t, 0.0, b.Height())
}

func TestBox_Valid(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected bool
	}{
		{"Zero", Box{}, true},
		{"Unit", Box{0, 0, 1, 1}, true},
		{"Empty", Empty, false},
		{"InvertedX", Box{1, 0, 0, 1}, false},
		{"InvertedY", Box{0, 1, 1, 0}, false},
		{"NaN", Box{math.NaN(), 0, 1, 1}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.Valid())
		})
	}
}

func TestBox_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected string
	}{
		{"Zero", Box{}, "[0,0,0,0]"},
		{"Integers", Box{-1, 2, 3, 4}, "[-1,2,3,4]"},
		{"Exact", Box{-100.5, -200.25, 1234.125, 5678.0625}, "[-100.5,-200.25,1234.125,5678.0625]"},
		{"Rounded", Box{-100000.0625, -2.001953125, 99.0078125, 123.015625}, "[-100000.06,-2.0019531,99.007812,123.01562]"},
		{"Empty", Empty, "[]"},
		{"Inverted", Box{1, 0, 0, 1}, "[]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_Width(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected float64
	}{
		{"Zero", Box{}, 0},
		{"One", Box{0, 0, 1, 0}, 1},
		{"Two", Box{-1, 0, 1, 0}, 2},
		{"Empty", Empty, math.Inf(-1)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.Width())
		})
	}
}

func TestBox_Height(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected float64
	}{
		{"Zero", Box{}, 0},
		{"One", Box{0, 0, 0, 1}, 1},
		{"Two", Box{0, -1, 0, 1}, 2},
		{"Empty", Empty, math.Inf(-1)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.Height())
		})
	}
}

func TestBox_Center(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected Coord
	}{
		{"Zero", Box{}, Coord{}},
		{"Negative", Box{-1, -2, 0, 0}, Coord{-0.5, -1}},
		{"Positive", Box{0, 0, 1, 2}, Coord{0.5, 1}},
		{"Straddling", Box{-2, -1, 2, 1}, Coord{0, 0}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.Center())
		})
	}
}

func TestBox_Expand(t *testing.T) {
	testCases := []struct {
		name           string
		b, c, expected Box
	}{
		{"Zero", Box{}, Box{}, Box{}},
		{"Empty", Empty, Empty, Empty},
		{"ZeroByEmpty", Box{}, Empty, Box{}},
		{"EmptyByZero", Empty, Box{}, Box{}},
		{"EmptyByUnit", Empty, Box{-1, -1, 1, 1}, Box{-1, -1, 1, 1}},
		{"InvalidReplaced", Box{1, 1, 0, 0}, Box{2, 2, 3, 3}, Box{2, 2, 3, 3}},
		{"ByInvalid", Box{0, 0, 1, 1}, Box{5, 5, -5, -5}, Box{0, 0, 1, 1}},
		{"Contained", Box{-1, -1, 1, 1}, Box{0, 0, 0.5, 0.5}, Box{-1, -1, 1, 1}},
		{"Disjoint", Box{0, 0, 1, 1}, Box{5, 5, 6, 6}, Box{0, 0, 6, 6}},
		{"GrowXMin", Box{-1, -1, 1, 1}, Box{-2, -0.5, 0, 0.5}, Box{-2, -1, 1, 1}},
		{"GrowYMin", Box{-1, -1, 1, 1}, Box{-0.5, -2, 0, 0.5}, Box{-1, -2, 1, 1}},
		{"GrowXMax", Box{-1, -1, 1, 1}, Box{-0.5, -0.5, 2, 0.5}, Box{-1, -1, 2, 1}},
		{"GrowYMax", Box{-1, -1, 1, 1}, Box{-0.5, -0.5, 0.5, 2}, Box{-1, -1, 1, 2}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b, c := testCase.b, testCase.c

			b.Expand(&c)

			assert.Equal(t, testCase.c, c, "Parameter box must not change.")
			assert.Equal(t, testCase.expected, b)
		})
	}

	t.Run("Idempotent", func(t *testing.T) {
		b, c := Box{-1, -1, 1, 1}, Box{-2, 0, 0, 3}

		b.Expand(&c)
		once := b
		b.Expand(&c)

		assert.Equal(t, once, b)
	})
}

func TestBox_ExpandXY(t *testing.T) {
	testCases := []struct {
		name     string
		b        Box
		x, y     float64
		expected Box
	}{
		{"Zero", Box{}, 0, 0, Box{}},
		{"Empty", Empty, 0, 0, Box{}},
		{"EmptyToPoint", Empty, 3, -4, Box{3, -4, 3, -4}},
		{"Unchanged", Box{0, 0, 1, 1}, 0.5, 0.5, Box{0, 0, 1, 1}},
		{"Left", Box{-1, -1, 1, 1}, -2, 0, Box{-2, -1, 1, 1}},
		{"Down", Box{-1, -1, 1, 1}, 0, -2, Box{-1, -2, 1, 1}},
		{"Right", Box{-1, -1, 1, 1}, 2, 0, Box{-1, -1, 2, 1}},
		{"Up", Box{-1, -1, 1, 1}, 0, 2, Box{-1, -1, 1, 2}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := testCase.b

			b.ExpandXY(testCase.x, testCase.y)

			assert.Equal(t, testCase.expected, b)
		})
	}
}

func TestBox_Pad(t *testing.T) {
	testCases := []struct {
		name     string
		b        Box
		tol      float64
		expected Box
	}{
		{"ZeroTolerance", Box{0, 0, 1, 1}, 0, Box{0, 0, 1, 1}},
		{"Unit", Box{0, 0, 1, 1}, 1, Box{-1, -1, 2, 2}},
		{"Point", Box{5.5, 5.5, 5.5, 5.5}, 1, Box{4.5, 4.5, 6.5, 6.5}},
		{"Shrink", Box{-2, -2, 2, 2}, -1, Box{-1, -1, 1, 1}},
		{"Empty", Empty, 1, Empty},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := testCase.b

			b.Pad(testCase.tol)

			assert.Equal(t, testCase.expected, b)
		})
	}

	t.Run("EmptyStaysInvalid", func(t *testing.T) {
		b := Empty

		b.Pad(math.MaxFloat64)

		assert.False(t, b.Valid())
	})
}

func TestBox_Intersects(t *testing.T) {
	testCases := []struct {
		name     string
		b, c     Box
		expected bool
	}{
		{"Zero", Box{}, Box{}, true},
		{"Empty", Empty, Empty, false},
		{"ZeroEmpty", Box{}, Empty, false},
		{"EmptyZero", Empty, Box{}, false},
		{"Inverted", Box{1, 1, -1, -1}, Box{-2, -2, 2, 2}, false},
		{"FullyContained", Box{-2, -2, 2, 2}, Box{-1, -1, 1, 1}, true},
		{"OverlapLeft", Box{-2, -2, 2, 2}, Box{-3, -1, -1, 1}, true},
		{"OverlapDown", Box{-2, -2, 2, 2}, Box{-1, -3, 1, -1}, true},
		{"TouchLeft", Box{-2, -2, 2, 2}, Box{-3, -1, -2, 1}, true},
		{"TouchRight", Box{-2, -2, 2, 2}, Box{2, -1, 3, 1}, true},
		{"TouchUp", Box{-2, -2, 2, 2}, Box{-1, 2, 1, 3}, true},
		{"TouchCorner", Box{0, 0, 1, 1}, Box{1, 1, 2, 2}, true},
		{"IsLeftOf", Box{-2, -2, 0, 0}, Box{-100, -2, -50, 0}, false},
		{"IsBelow", Box{-2, -2, 0, 0}, Box{-2, -100, 0, -50}, false},
		{"IsRightOf", Box{-2, -2, 0, 2}, Box{50, -2, 100, 1}, false},
		{"IsAbove", Box{-2, -2, 2, 2}, Box{1, 50, 2, 100}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b, c := testCase.b, testCase.c

			assert.Equal(t, testCase.expected, b.Intersects(&c))
			assert.Equal(t, testCase.expected, c.Intersects(&b), "Intersection must be symmetric.")
		})
	}
}

func TestBox_Contains(t *testing.T) {
	testCases := []struct {
		name     string
		b, c     Box
		expected bool
	}{
		{"Self", Box{0, 0, 1, 1}, Box{0, 0, 1, 1}, true},
		{"Inside", Box{-2, -2, 2, 2}, Box{-1, -1, 1, 1}, true},
		{"Overlapping", Box{-2, -2, 2, 2}, Box{1, 1, 3, 3}, false},
		{"Outside", Box{0, 0, 1, 1}, Box{5, 5, 6, 6}, false},
		{"EmptyInner", Box{0, 0, 1, 1}, Empty, false},
		{"EmptyOuter", Empty, Box{0, 0, 1, 1}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b, c := testCase.b, testCase.c

			assert.Equal(t, testCase.expected, b.Contains(&c))
		})
	}
}
