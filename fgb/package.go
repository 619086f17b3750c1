// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fgb adapts features encoded in the FlatGeobuf feature format
// so they can be stored in a geomem.Datasource.
//
// A FlatGeobuf feature is a size-prefixed FlatBuffers table holding a
// geometry and a byte-encoded list of property values. Use ReadFeature
// to access the table inside a buffer, and NewView to present it, with
// the column Schema needed to decode its properties, as a
// geomem.Feature.
//
// The buffers are read in place. A buffer must not be modified while
// any Feature, Geometry or View refers to it.
package fgb
