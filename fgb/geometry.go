// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgb

import "github.com/gogama/geomem/envelope"

// Envelope returns the bounding box of every coordinate in the
// geometry, including those of its parts. A geometry without
// coordinates, or one whose buffer is corrupt, returns envelope.Empty.
func (g *Geometry) Envelope() envelope.Box {
	b := envelope.Empty
	err := safeFlatBuffersInteraction(func() error {
		g.bounds(&b)
		return nil
	})
	if err != nil {
		return envelope.Empty
	}
	return b
}

func (g *Geometry) bounds(b *envelope.Box) {
	n := g.XyLength()
	for i := 0; i+1 < n; i += 2 {
		b.ExpandXY(g.Xy(i+0), g.Xy(i+1))
	}
	n = g.PartsLength()
	for i := 0; i < n; i++ {
		var h Geometry
		if g.Parts(&h, i) {
			h.bounds(b)
		}
	}
}
