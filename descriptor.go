// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

// DatasourceType distinguishes datasources producing vector features
// from those producing raster data.
type DatasourceType int

const (
	Vector DatasourceType = iota
	Raster
)

// GeometryType describes the kind of geometry a datasource produces.
type GeometryType int

const (
	PointGeometry GeometryType = iota + 1
	LineStringGeometry
	PolygonGeometry
	// Collection means a datasource may produce features of any
	// geometry type.
	Collection
)

// LayerDescriptor holds descriptive metadata about a datasource. None
// of it affects query behavior.
type LayerDescriptor struct {
	// Name is the datasource name it is registered under.
	Name string
	// Encoding is the character encoding of string attribute values.
	Encoding string
}
