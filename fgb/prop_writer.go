// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgb

import (
	"io"
	"math"
	"unsafe"

	flatbuffers "github.com/google/flatbuffers/go"
)

// PropWriter writes a list of key value pairs in FlatGeobuf property
// format to an underlying stream.
type PropWriter struct {
	w io.Writer
}

func NewPropWriter(w io.Writer) *PropWriter {
	if w == nil {
		textPanic("nil writer")
	}
	return &PropWriter{w: w}
}

func (w *PropWriter) WriteInt8(v int8) (n int, err error) {
	b := []byte{byte(v)}
	return w.w.Write(b)
}

func (w *PropWriter) WriteUByte(v uint8) (n int, err error) {
	b := []byte{v}
	return w.w.Write(b)
}

func (w *PropWriter) WriteBool(v bool) (n int, err error) {
	b := []byte{0}
	if v {
		b[0] = 1
	}
	return w.w.Write(b)
}

func (w *PropWriter) WriteShort(v int16) (n int, err error) {
	return w.WriteUShort(uint16(v))
}

func (w *PropWriter) WriteUShort(v uint16) (n int, err error) {
	b := []byte{byte(v), byte(v >> 8)}
	return w.w.Write(b)
}

func (w *PropWriter) WriteInt(v int32) (n int, err error) {
	return w.WriteUInt(uint32(v))
}

func (w *PropWriter) WriteUInt(v uint32) (n int, err error) {
	b := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	return w.w.Write(b)
}

func (w *PropWriter) WriteLong(v int64) (n int, err error) {
	return w.WriteULong(uint64(v))
}

func (w *PropWriter) WriteULong(v uint64) (n int, err error) {
	b := []byte{
		byte(v >> 000), byte(v >> 010), byte(v >> 020), byte(v >> 030),
		byte(v >> 040), byte(v >> 050), byte(v >> 060), byte(v >> 070),
	}
	return w.w.Write(b)
}

func (w *PropWriter) WriteFloat(v float32) (n int, err error) {
	b := make([]byte, flatbuffers.SizeFloat32)
	flatbuffers.WriteFloat32(b, v)
	return w.w.Write(b)
}

func (w *PropWriter) WriteDouble(v float64) (n int, err error) {
	b := make([]byte, flatbuffers.SizeFloat64)
	flatbuffers.WriteFloat64(b, v)
	return w.w.Write(b)
}

// WriteString writes a length-prefixed string. Use it for DateTime
// values too.
func (w *PropWriter) WriteString(v string) (n int, err error) {
	return w.WriteBinary(unsafe.Slice(unsafe.StringData(v), len(v)))
}

// WriteBinary writes a length-prefixed byte string. Use it for Json
// values too.
func (w *PropWriter) WriteBinary(v []byte) (n int, err error) {
	if int64(len(v)) > math.MaxUint32 {
		return 0, fmtErr("property length %d overflows uint32", len(v))
	}
	n, err = w.WriteUInt(uint32(len(v)))
	if err != nil {
		return
	}
	var m int
	m, err = w.w.Write(v)
	n += m
	return
}

// WriteProp writes the column index col followed by v encoded as a
// value of column type t. The dynamic type of v must be the Go type
// PropReader produces for t: int8 for Byte, uint8 for UByte, and so on,
// with string for String and DateTime and []byte for Json and Binary.
// Nothing is written if v has the wrong type.
func (w *PropWriter) WriteProp(col uint16, t ColumnType, v interface{}) (n int, err error) {
	if !assignable(t, v) {
		return 0, fmtErr("column %d has type %s, cannot write %T", col, t, v)
	}
	if n, err = w.WriteUShort(col); err != nil {
		return
	}
	var m int
	switch x := v.(type) {
	case int8:
		m, err = w.WriteInt8(x)
	case uint8:
		m, err = w.WriteUByte(x)
	case bool:
		m, err = w.WriteBool(x)
	case int16:
		m, err = w.WriteShort(x)
	case uint16:
		m, err = w.WriteUShort(x)
	case int32:
		m, err = w.WriteInt(x)
	case uint32:
		m, err = w.WriteUInt(x)
	case int64:
		m, err = w.WriteLong(x)
	case uint64:
		m, err = w.WriteULong(x)
	case float32:
		m, err = w.WriteFloat(x)
	case float64:
		m, err = w.WriteDouble(x)
	case string:
		m, err = w.WriteString(x)
	case []byte:
		m, err = w.WriteBinary(x)
	}
	n += m
	return
}

func assignable(t ColumnType, v interface{}) bool {
	switch v.(type) {
	case int8:
		return t == ColumnTypeByte
	case uint8:
		return t == ColumnTypeUByte
	case bool:
		return t == ColumnTypeBool
	case int16:
		return t == ColumnTypeShort
	case uint16:
		return t == ColumnTypeUShort
	case int32:
		return t == ColumnTypeInt
	case uint32:
		return t == ColumnTypeUInt
	case int64:
		return t == ColumnTypeLong
	case uint64:
		return t == ColumnTypeULong
	case float32:
		return t == ColumnTypeFloat
	case float64:
		return t == ColumnTypeDouble
	case string:
		return t == ColumnTypeString || t == ColumnTypeDateTime
	case []byte:
		return t == ColumnTypeJson || t == ColumnTypeBinary
	default:
		return false
	}
}
