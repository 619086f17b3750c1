// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgb

import (
	"io"
	"math"
	"unsafe"

	"github.com/gogama/geomem/littleendian"
	flatbuffers "github.com/google/flatbuffers/go"
)

// PropReader reads a list of key value pairs in FlatGeobuf property
// format from an underlying stream.
type PropReader struct {
	// r is the stream to read from.
	r io.Reader
	// buf is scratch space for fixed-size values.
	buf [8]byte
}

func NewPropReader(r io.Reader) *PropReader {
	if r == nil {
		textPanic("nil reader")
	}
	return &PropReader{r: r}
}

func (r *PropReader) read(n int) ([]byte, error) {
	b := r.buf[:n]
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *PropReader) ReadInt8() (int8, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (r *PropReader) ReadUByte() (uint8, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *PropReader) ReadBool() (bool, error) {
	b, err := r.read(1)
	if err != nil {
		return false, err
	}
	return b[0] > 0, nil
}

func (r *PropReader) ReadShort() (int16, error) {
	v, err := r.ReadUShort()
	return int16(v), err
}

func (r *PropReader) ReadUShort() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return littleendian.Uint16(b), nil
}

func (r *PropReader) ReadInt() (int32, error) {
	v, err := r.ReadUInt()
	return int32(v), err
}

func (r *PropReader) ReadUInt() (uint32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return littleendian.Uint32(b), nil
}

func (r *PropReader) ReadLong() (int64, error) {
	v, err := r.ReadULong()
	return int64(v), err
}

func (r *PropReader) ReadULong() (uint64, error) {
	b, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return littleendian.Uint64(b), nil
}

func (r *PropReader) ReadFloat() (float32, error) {
	b, err := r.read(flatbuffers.SizeFloat32)
	if err != nil {
		return 0, err
	}
	return flatbuffers.GetFloat32(b), nil
}

func (r *PropReader) ReadDouble() (float64, error) {
	b, err := r.read(flatbuffers.SizeFloat64)
	if err != nil {
		return 0, err
	}
	return flatbuffers.GetFloat64(b), nil
}

// ReadString reads a length-prefixed string. It is also used for
// DateTime values, which FlatGeobuf stores as ISO 8601 strings.
func (r *PropReader) ReadString() (string, error) {
	b, err := r.ReadBinary()
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", nil
	}
	return unsafe.String(&b[0], len(b)), nil
}

// ReadBinary reads a length-prefixed byte string. It is also used for
// Json values.
func (r *PropReader) ReadBinary() ([]byte, error) {
	n, err := r.ReadUInt()
	if err != nil {
		return nil, err
	}
	if int64(n) > math.MaxInt {
		return nil, fmtErr("property length %d overflows int", n)
	}
	b := make([]byte, int(n))
	if _, err = io.ReadFull(r.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// PropValue is one decoded property value.
type PropValue struct {
	Col      Column
	Value    interface{}
	ColIndex uint16
}

// ReadSchema reads property values until the end of the stream,
// decoding each according to the type of its column in schema.
func (r *PropReader) ReadSchema(schema Schema) ([]PropValue, error) {
	n := len(schema)
	vals := make([]PropValue, 0, n)

	for {
		col, err := r.ReadUShort()
		if err == io.EOF {
			return vals, nil
		} else if err != nil {
			return nil, wrapErr("error reading column index", err)
		}
		i := int(col)
		if i >= n {
			return nil, fmtErr("column index %d not in schema (%d columns)", i, n)
		}
		val := PropValue{
			Col:      schema[i],
			ColIndex: col,
		}
		switch val.Col.Type {
		case ColumnTypeByte:
			val.Value, err = r.ReadInt8()
		case ColumnTypeUByte:
			val.Value, err = r.ReadUByte()
		case ColumnTypeBool:
			val.Value, err = r.ReadBool()
		case ColumnTypeShort:
			val.Value, err = r.ReadShort()
		case ColumnTypeUShort:
			val.Value, err = r.ReadUShort()
		case ColumnTypeInt:
			val.Value, err = r.ReadInt()
		case ColumnTypeUInt:
			val.Value, err = r.ReadUInt()
		case ColumnTypeLong:
			val.Value, err = r.ReadLong()
		case ColumnTypeULong:
			val.Value, err = r.ReadULong()
		case ColumnTypeFloat:
			val.Value, err = r.ReadFloat()
		case ColumnTypeDouble:
			val.Value, err = r.ReadDouble()
		case ColumnTypeString, ColumnTypeDateTime:
			val.Value, err = r.ReadString()
		case ColumnTypeJson, ColumnTypeBinary:
			val.Value, err = r.ReadBinary()
		default:
			return nil, fmtErr("column %q has unknown type %s", val.Col.Name, val.Col.Type)
		}
		if err != nil {
			return nil, wrapErr("error reading column %q value", err, val.Col.Name)
		}
		vals = append(vals, val)
	}
}
