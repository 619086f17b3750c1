// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgb_test

import (
	"bytes"
	"fmt"

	"github.com/gogama/geomem"
	"github.com/gogama/geomem/envelope"
	"github.com/gogama/geomem/fgb"
)

func Example() {
	schema := fgb.Schema{
		{Name: "name", Type: fgb.ColumnTypeString},
		{Name: "depth", Type: fgb.ColumnTypeDouble},
	}

	// Encode a wreck site as a FlatGeobuf feature.
	var props bytes.Buffer
	w := fgb.NewPropWriter(&props)
	_, _ = w.WriteProp(0, fgb.ColumnTypeString, "wreck")
	_, _ = w.WriteProp(1, fgb.ColumnTypeDouble, 31.0)
	buf := fgb.Encode(&fgb.GeometrySpec{
		Type: fgb.GeometryTypePolygon,
		XY:   []float64{10, 10, 12, 10, 12, 11, 10, 11, 10, 10},
	}, props.Bytes())

	f, err := fgb.ReadFeature(buf)
	if err != nil {
		fmt.Println(err)
		return
	}

	ds, _ := geomem.NewDatasource(nil)
	ds.Push(fgb.NewView(f, schema))

	fs := ds.FeaturesAtPoint(envelope.Coord{X: 11, Y: 10.5}, 0)
	for g, ok := fs.Next(); ok; g, ok = fs.Next() {
		fmt.Println(g)
	}
	// Output: View{Type:Polygon,Bounds:[10,10,12,11],Properties:{depth:31,name:wreck}}
}
