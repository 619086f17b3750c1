// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgb

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// GeometrySpec describes a geometry to be encoded by Encode.
type GeometrySpec struct {
	// Type is the geometry type code.
	Type GeometryType
	// XY holds interleaved X and Y coordinates.
	XY []float64
	// Ends holds the end index, in coordinate pairs, of each ring or
	// line after the first. It may be empty when there is only one.
	Ends []uint32
	// Parts holds the member geometries of multi-part geometries
	// encoded as parts, such as MultiPolygon and GeometryCollection.
	Parts []GeometrySpec
}

// Encode returns a size-prefixed FlatGeobuf Feature table holding the
// geometry g and the encoded property bytes props. Either may be nil.
// Use a PropWriter to produce props.
func Encode(g *GeometrySpec, props []byte) []byte {
	b := flatbuffers.NewBuilder(256)
	var geom, p flatbuffers.UOffsetT
	if g != nil {
		geom = buildGeometry(b, g)
	}
	if len(props) > 0 {
		p = b.CreateByteVector(props)
	}
	featureStart(b)
	if geom != 0 {
		featureAddGeometry(b, geom)
	}
	if p != 0 {
		featureAddProperties(b, p)
	}
	b.FinishSizePrefixed(featureEnd(b))
	return b.FinishedBytes()
}

// buildGeometry serializes g and its parts, depth first, since nested
// tables must be complete before their parent table is started.
func buildGeometry(b *flatbuffers.Builder, g *GeometrySpec) flatbuffers.UOffsetT {
	parts := make([]flatbuffers.UOffsetT, len(g.Parts))
	for i := range g.Parts {
		parts[i] = buildGeometry(b, &g.Parts[i])
	}

	var partsVec, xyVec, endsVec flatbuffers.UOffsetT
	if len(parts) > 0 {
		b.StartVector(flatbuffers.SizeUOffsetT, len(parts), flatbuffers.SizeUOffsetT)
		for i := len(parts) - 1; i >= 0; i-- {
			b.PrependUOffsetT(parts[i])
		}
		partsVec = b.EndVector(len(parts))
	}
	if len(g.XY) > 0 {
		b.StartVector(flatbuffers.SizeFloat64, len(g.XY), flatbuffers.SizeFloat64)
		for i := len(g.XY) - 1; i >= 0; i-- {
			b.PrependFloat64(g.XY[i])
		}
		xyVec = b.EndVector(len(g.XY))
	}
	if len(g.Ends) > 0 {
		b.StartVector(flatbuffers.SizeUint32, len(g.Ends), flatbuffers.SizeUint32)
		for i := len(g.Ends) - 1; i >= 0; i-- {
			b.PrependUint32(g.Ends[i])
		}
		endsVec = b.EndVector(len(g.Ends))
	}

	geometryStart(b)
	if endsVec != 0 {
		geometryAddEnds(b, endsVec)
	}
	if xyVec != 0 {
		geometryAddXy(b, xyVec)
	}
	if partsVec != 0 {
		geometryAddParts(b, partsVec)
	}
	geometryAddType(b, g.Type)
	return geometryEnd(b)
}
