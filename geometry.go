// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogama/geomem/envelope"
)

// Point is a Geometry consisting of a single coordinate.
type Point envelope.Coord

func (p Point) Envelope() envelope.Box {
	return envelope.FromCoord(envelope.Coord(p))
}

// LineString is a Geometry consisting of a sequence of coordinates.
type LineString []envelope.Coord

func (ls LineString) Envelope() envelope.Box {
	b := envelope.Empty
	for i := range ls {
		b.ExpandXY(ls[i].X, ls[i].Y)
	}
	return b
}

// Polygon is a Geometry consisting of an exterior ring and zero or more
// interior rings (holes). Only the exterior ring contributes to the
// bounding box.
type Polygon struct {
	Exterior LineString
	Holes    []LineString
}

func (p *Polygon) Envelope() envelope.Box {
	return p.Exterior.Envelope()
}

// SimpleFeature is a ready-made Feature holding a list of geometries
// and a set of named attribute values.
type SimpleFeature struct {
	// ID is an arbitrary caller-assigned identifier.
	ID int64
	// Geometries lists the feature's geometries.
	Geometries []Geometry
	// Attributes holds the feature's attribute values by name.
	Attributes map[string]interface{}
}

// NewFeature returns a SimpleFeature with the given identifier and
// geometries and an empty attribute set.
func NewFeature(id int64, geoms ...Geometry) *SimpleFeature {
	return &SimpleFeature{
		ID:         id,
		Geometries: geoms,
		Attributes: make(map[string]interface{}),
	}
}

func (f *SimpleFeature) NumGeometries() int {
	return len(f.Geometries)
}

// Geometry returns the geometry at index i. Panics if i is out of range.
func (f *SimpleFeature) Geometry(i int) Geometry {
	if i < 0 || i >= len(f.Geometries) {
		fmtPanic("geometry index %d out of range [0:%d]", i, len(f.Geometries))
	}
	return f.Geometries[i]
}

// Put sets the named attribute and returns the feature, so calls can
// be chained.
func (f *SimpleFeature) Put(name string, value interface{}) *SimpleFeature {
	if f.Attributes == nil {
		f.Attributes = make(map[string]interface{})
	}
	f.Attributes[name] = value
	return f
}

// Get returns the named attribute value and whether it was present.
func (f *SimpleFeature) Get(name string) (interface{}, bool) {
	v, ok := f.Attributes[name]
	return v, ok
}

func (f *SimpleFeature) String() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "Feature{ID:%d,Bounds:%s,Attributes:{", f.ID, Bounds(f))
	names := make([]string, 0, len(f.Attributes))
	for name := range f.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		_, _ = fmt.Fprintf(&b, "%s:%v", name, f.Attributes[name])
	}
	b.WriteString("}}")
	return b.String()
}
