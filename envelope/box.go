// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package envelope

import (
	"math"
	"strconv"
	"strings"
)

// Coord is a two-dimensional coordinate.
type Coord struct {
	X float64
	Y float64
}

// Box is an axis-aligned bounding rectangle. A Box is valid when
// XMin <= XMax and YMin <= YMax. An invalid Box never intersects
// anything.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// Empty is the invalid box which has no contributing geometry. Expanding
// Empty by a valid box produces that box.
var Empty = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// New returns the box with corners (x0, y0) and (x1, y1). The corners
// may be given in any order.
func New(x0, y0, x1, y1 float64) Box {
	return Box{
		XMin: math.Min(x0, x1),
		YMin: math.Min(y0, y1),
		XMax: math.Max(x0, x1),
		YMax: math.Max(y0, y1),
	}
}

// FromCoord returns the zero-area box located at c.
func FromCoord(c Coord) Box {
	return Box{XMin: c.X, YMin: c.Y, XMax: c.X, YMax: c.Y}
}

// Valid reports whether b has XMin <= XMax and YMin <= YMax. Boxes
// containing NaN are never valid.
func (b Box) Valid() bool {
	return b.XMin <= b.XMax && b.YMin <= b.YMax
}

func (b Box) Width() float64 {
	return b.XMax - b.XMin
}

func (b Box) Height() float64 {
	return b.YMax - b.YMin
}

// Center returns the midpoint of b. The result is undefined for an
// invalid box.
func (b Box) Center() Coord {
	return Coord{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// Expand grows b to include c.
//
// If b is invalid, b becomes a copy of c. Otherwise, if c is valid, each
// side of b is moved outward as far as needed to cover c. An invalid c
// leaves a valid b unchanged.
func (b *Box) Expand(c *Box) {
	if !b.Valid() {
		*b = *c
		return
	} else if !c.Valid() {
		return
	}
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// ExpandXY grows b to include the coordinate (x, y). If b is invalid it
// becomes the zero-area box at (x, y).
func (b *Box) ExpandXY(x, y float64) {
	c := Box{XMin: x, YMin: y, XMax: x, YMax: y}
	b.Expand(&c)
}

// Pad moves every side of b outward by tol. A negative tol shrinks b,
// possibly making it invalid. Padding Empty leaves it empty.
func (b *Box) Pad(tol float64) {
	b.XMin -= tol
	b.YMin -= tol
	b.XMax += tol
	b.YMax += tol
}

// Intersects reports whether b and c overlap. Boxes which only share an
// edge or a corner intersect. If either box is invalid the result is
// false.
func (b Box) Intersects(c *Box) bool {
	if !b.Valid() || !c.Valid() {
		return false
	}
	return b.XMin <= c.XMax &&
		b.YMin <= c.YMax &&
		c.XMin <= b.XMax &&
		c.YMin <= b.YMax
}

// Contains reports whether c lies entirely inside b, including its
// boundary. Both boxes must be valid.
func (b Box) Contains(c *Box) bool {
	if !b.Valid() || !c.Valid() {
		return false
	}
	return b.XMin <= c.XMin &&
		b.YMin <= c.YMin &&
		c.XMax <= b.XMax &&
		c.YMax <= b.YMax
}

// String returns the box as "[XMin,YMin,XMax,YMax]" or "[]" if the box
// is invalid.
func (b Box) String() string {
	if !b.Valid() {
		return "[]"
	}
	var s strings.Builder
	s.WriteByte('[')
	s.WriteString(formatFloat(b.XMin))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.YMin))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.XMax))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.YMax))
	s.WriteByte(']')
	return s.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 8, 64)
}
