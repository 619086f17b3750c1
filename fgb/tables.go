// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgb

import (
	"strconv"

	flatbuffers "github.com/google/flatbuffers/go"
)

// GeometryType is the FlatGeobuf geometry type code.
type GeometryType byte

const (
	GeometryTypeUnknown            GeometryType = 0
	GeometryTypePoint              GeometryType = 1
	GeometryTypeLineString         GeometryType = 2
	GeometryTypePolygon            GeometryType = 3
	GeometryTypeMultiPoint         GeometryType = 4
	GeometryTypeMultiLineString    GeometryType = 5
	GeometryTypeMultiPolygon       GeometryType = 6
	GeometryTypeGeometryCollection GeometryType = 7
)

var geometryTypeNames = map[GeometryType]string{
	GeometryTypeUnknown:            "Unknown",
	GeometryTypePoint:              "Point",
	GeometryTypeLineString:         "LineString",
	GeometryTypePolygon:            "Polygon",
	GeometryTypeMultiPoint:         "MultiPoint",
	GeometryTypeMultiLineString:    "MultiLineString",
	GeometryTypeMultiPolygon:       "MultiPolygon",
	GeometryTypeGeometryCollection: "GeometryCollection",
}

func (t GeometryType) String() string {
	if s, ok := geometryTypeNames[t]; ok {
		return s
	}
	return "GeometryType(" + strconv.Itoa(int(t)) + ")"
}

// Field offsets into the vtables of the Geometry and Feature tables.
const (
	geometryEnds  = 4
	geometryXy    = 6
	geometryType  = 16
	geometryParts = 18

	featureGeometry   = 4
	featureProperties = 6
)

// Geometry is a FlatGeobuf geometry table.
type Geometry struct {
	_tab flatbuffers.Table
}

func (rcv *Geometry) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Geometry) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Geometry) Ends(j int) uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(geometryEnds))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetUint32(a + flatbuffers.UOffsetT(j*4))
	}
	return 0
}

func (rcv *Geometry) EndsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(geometryEnds))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Geometry) Xy(j int) float64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(geometryXy))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetFloat64(a + flatbuffers.UOffsetT(j*8))
	}
	return 0
}

func (rcv *Geometry) XyLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(geometryXy))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Geometry) Type() GeometryType {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(geometryType))
	if o != 0 {
		return GeometryType(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return GeometryTypeUnknown
}

func (rcv *Geometry) Parts(obj *Geometry, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(geometryParts))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *Geometry) PartsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(geometryParts))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// Feature is a FlatGeobuf feature table.
type Feature struct {
	_tab flatbuffers.Table
}

// GetSizePrefixedRootAsFeature returns the size-prefixed root Feature
// table in buf at offset.
func GetSizePrefixedRootAsFeature(buf []byte, offset flatbuffers.UOffsetT) *Feature {
	n := flatbuffers.GetUOffsetT(buf[offset+flatbuffers.SizeUint32:])
	x := &Feature{}
	x.Init(buf, n+offset+flatbuffers.SizeUint32)
	return x
}

func (rcv *Feature) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Feature) Table() flatbuffers.Table {
	return rcv._tab
}

// Geometry returns the feature's geometry, or nil if it has none. If
// obj is not nil it is initialized and returned.
func (rcv *Feature) Geometry(obj *Geometry) *Geometry {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(featureGeometry))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(Geometry)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

// PropertiesBytes returns the raw encoded property values.
func (rcv *Feature) PropertiesBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(featureProperties))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func geometryStart(b *flatbuffers.Builder) {
	b.StartObject(8)
}

func geometryAddEnds(b *flatbuffers.Builder, ends flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, ends, 0)
}

func geometryAddXy(b *flatbuffers.Builder, xy flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, xy, 0)
}

func geometryAddType(b *flatbuffers.Builder, t GeometryType) {
	b.PrependByteSlot(6, byte(t), 0)
}

func geometryAddParts(b *flatbuffers.Builder, parts flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(7, parts, 0)
}

func geometryEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}

func featureStart(b *flatbuffers.Builder) {
	b.StartObject(3)
}

func featureAddGeometry(b *flatbuffers.Builder, g flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, g, 0)
}

func featureAddProperties(b *flatbuffers.Builder, props flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, props, 0)
}

func featureEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}
