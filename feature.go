// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import "github.com/gogama/geomem/envelope"

// A Geometry is a single shape which can report its bounding box.
type Geometry interface {
	// Envelope returns the bounding box of the geometry. A geometry
	// with no coordinates returns envelope.Empty.
	Envelope() envelope.Box
}

// A Feature is a geometry-bearing record. Apart from its geometries,
// the contents of a Feature are opaque to the Datasource.
//
// Once pushed into a Datasource, a Feature must not be modified.
type Feature interface {
	// NumGeometries returns the number of geometries in the feature.
	NumGeometries() int
	// Geometry returns the geometry at index i, where
	// 0 <= i < NumGeometries().
	Geometry(i int) Geometry
}

// Bounds returns the union of the bounding boxes of all of a feature's
// geometries. If the feature has no geometries, or none of them has
// coordinates, the result is envelope.Empty.
func Bounds(f Feature) envelope.Box {
	b := envelope.Empty
	n := f.NumGeometries()
	for i := 0; i < n; i++ {
		g := f.Geometry(i).Envelope()
		b.Expand(&g)
	}
	return b
}
