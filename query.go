// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import "github.com/gogama/geomem/envelope"

// Query is a request for the features in a region of interest.
type Query struct {
	// BBox is the region of interest. A query with an invalid BBox
	// matches nothing when spatial filtering is applied.
	BBox envelope.Box
}

// NewQuery returns a Query for the region b.
func NewQuery(b envelope.Box) Query {
	return Query{BBox: b}
}

// Box returns the query's region of interest.
func (q Query) Box() envelope.Box {
	return q.BBox
}

func (q Query) String() string {
	return "Query{BBox:" + q.BBox.String() + "}"
}
