// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import "github.com/gogama/geomem/envelope"

// state is the position of a Featureset in its lifecycle.
type state int

const (
	created   state = 0x00
	advancing state = 0x01
	exhausted state = 0x02
)

// Featureset is a lazy, single-pass cursor over the features of a
// Datasource which match a query box.
//
// A Featureset reads directly from the Datasource it was created from;
// it does not copy the feature list. The Datasource must not be
// modified until the Featureset is exhausted or abandoned. Abandoning a
// Featureset requires no cleanup.
type Featureset struct {
	// ds is the Datasource being read.
	ds *Datasource
	// box is the query box.
	box envelope.Box
	// bboxCheck selects whether candidates are tested against box.
	bboxCheck bool
	// pos is the index of the next candidate feature in ds.features.
	pos int
	// state is the lifecycle state.
	state state
}

func newFeatureset(ds *Datasource, box envelope.Box, bboxCheck bool) *Featureset {
	return &Featureset{
		ds:        ds,
		box:       box,
		bboxCheck: bboxCheck,
	}
}

// Next advances the Featureset to the next matching feature and returns
// it. Features are produced in the Datasource's insertion order. When
// no matching features remain, Next returns nil and false, and it
// continues to do so on every later call.
//
// If bounding box checking is enabled, a feature matches when the
// union of its geometries' bounding boxes intersects the query box.
// Features without geometries never match, and an invalid query box
// matches nothing. If bounding box checking is disabled, every feature
// matches.
func (fs *Featureset) Next() (Feature, bool) {
	if fs.state == exhausted {
		return nil, false
	}
	fs.state = advancing
	for fs.pos < len(fs.ds.features) {
		f := fs.ds.features[fs.pos]
		fs.pos++
		if !fs.bboxCheck {
			return f, true
		}
		b := Bounds(f)
		if fs.box.Intersects(&b) {
			return f, true
		}
	}
	fs.state = exhausted
	return nil, false
}

// Box returns the query box the Featureset filters by.
func (fs *Featureset) Box() envelope.Box {
	return fs.box
}

// Exhausted reports whether Next has reported that no features remain.
func (fs *Featureset) Exhausted() bool {
	return fs.state == exhausted
}

// All drains the Featureset, returning every remaining matching
// feature in order.
func (fs *Featureset) All() []Feature {
	var r []Feature
	for {
		f, ok := fs.Next()
		if !ok {
			return r
		}
		r = append(r, f)
	}
}
