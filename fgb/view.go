// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgb

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/gogama/geomem"
	"github.com/gogama/geomem/envelope"
)

// View presents a FlatGeobuf Feature table as a geomem.Feature.
//
// A View whose geometry has parts reports one geomem geometry per part.
// Any other View with a geometry reports that geometry alone, and a View
// without a geometry reports none.
type View struct {
	// f is the underlying table.
	f *Feature
	// schema decodes the property bytes.
	schema Schema
	// geom is the feature's geometry, or nil if it has none or it
	// cannot be read.
	geom *Geometry
	// numParts is the geometry's part count.
	numParts int
}

var _ geomem.Feature = (*View)(nil)

// NewView returns a View of f whose properties are decoded with the
// column schema s. Panics if f is nil.
func NewView(f *Feature, s Schema) *View {
	if f == nil {
		textPanic("nil feature")
	}
	v := &View{f: f, schema: s}
	err := safeFlatBuffersInteraction(func() error {
		g := f.Geometry(nil)
		if g != nil {
			v.numParts = g.PartsLength()
			if v.numParts > 0 {
				// A parts length running past the buffer panics here.
				g.Parts(&Geometry{}, v.numParts-1)
			}
		}
		v.geom = g
		return nil
	})
	if err != nil {
		v.geom, v.numParts = nil, 0
	}
	return v
}

// Feature returns the underlying table.
func (v *View) Feature() *Feature {
	return v.f
}

func (v *View) NumGeometries() int {
	if v.geom == nil {
		return 0
	} else if v.numParts > 0 {
		return v.numParts
	}
	return 1
}

// Geometry returns the geometry, or part, at index i. A part which
// cannot be read is returned as a geometry with an empty envelope.
// Panics if i is out of range.
func (v *View) Geometry(i int) geomem.Geometry {
	if i < 0 || i >= v.NumGeometries() {
		fmtPanic("geometry index %d out of range [0:%d]", i, v.NumGeometries())
	} else if v.numParts > 0 {
		h := &Geometry{}
		err := safeFlatBuffersInteraction(func() error {
			v.geom.Parts(h, i)
			return nil
		})
		if err != nil {
			return unreadable{}
		}
		return h
	}
	return v.geom
}

// unreadable stands in for a corrupt part.
type unreadable struct{}

func (unreadable) Envelope() envelope.Box {
	return envelope.Empty
}

// GeometryType returns the type code of the feature's geometry, or
// GeometryTypeUnknown if it has none.
func (v *View) GeometryType() GeometryType {
	if v.geom == nil {
		return GeometryTypeUnknown
	}
	t := GeometryTypeUnknown
	_ = safeFlatBuffersInteraction(func() error {
		t = v.geom.Type()
		return nil
	})
	return t
}

// Attributes decodes the feature's property values, keyed by column
// name.
func (v *View) Attributes() (map[string]interface{}, error) {
	var vals []PropValue
	err := safeFlatBuffersInteraction(func() (err error) {
		r := NewPropReader(bytes.NewReader(v.f.PropertiesBytes()))
		vals, err = r.ReadSchema(v.schema)
		return
	})
	if err != nil {
		return nil, wrapErr("failed to read properties", err)
	}
	m := make(map[string]interface{}, len(vals))
	for i := range vals {
		m[vals[i].Col.Name] = vals[i].Value
	}
	return m, nil
}

func (v *View) String() string {
	var b strings.Builder
	b.WriteString("View{Type:")
	b.WriteString(v.GeometryType().String())
	b.WriteString(",Bounds:")
	b.WriteString(geomem.Bounds(v).String())
	b.WriteString(",Properties:{")
	attrs, err := v.Attributes()
	if err != nil {
		return "error: properties: " + err.Error()
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		_, _ = fmt.Fprintf(&b, "%s:%v", name, attrs[name])
	}
	b.WriteString("}}")
	return b.String()
}
