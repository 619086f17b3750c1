// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgb

import "strconv"

// ColumnType is the FlatGeobuf property column type code.
type ColumnType byte

const (
	ColumnTypeByte     ColumnType = 0
	ColumnTypeUByte    ColumnType = 1
	ColumnTypeBool     ColumnType = 2
	ColumnTypeShort    ColumnType = 3
	ColumnTypeUShort   ColumnType = 4
	ColumnTypeInt      ColumnType = 5
	ColumnTypeUInt     ColumnType = 6
	ColumnTypeLong     ColumnType = 7
	ColumnTypeULong    ColumnType = 8
	ColumnTypeFloat    ColumnType = 9
	ColumnTypeDouble   ColumnType = 10
	ColumnTypeString   ColumnType = 11
	ColumnTypeJson     ColumnType = 12
	ColumnTypeDateTime ColumnType = 13
	ColumnTypeBinary   ColumnType = 14
)

var columnTypeNames = [...]string{
	"Byte", "UByte", "Bool", "Short", "UShort", "Int", "UInt", "Long",
	"ULong", "Float", "Double", "String", "Json", "DateTime", "Binary",
}

func (t ColumnType) String() string {
	if int(t) < len(columnTypeNames) {
		return columnTypeNames[t]
	}
	return "ColumnType(" + strconv.Itoa(int(t)) + ")"
}

// Column describes one property column.
type Column struct {
	Name string
	Type ColumnType
}

// Schema is the ordered list of property columns shared by a set of
// features. A property's column index is its position in the Schema.
type Schema []Column

// Index returns the position of the named column, or -1.
func (s Schema) Index(name string) int {
	for i := range s {
		if s[i].Name == name {
			return i
		}
	}
	return -1
}
