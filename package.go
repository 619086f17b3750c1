// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geomem provides an in-memory datasource of geometric
// features.
//
// Features are pushed into a Datasource programmatically and retrieved
// with spatial queries. A query returns a Featureset, a lazy one-shot
// cursor which yields, in insertion order, every feature whose bounding
// box intersects the query box. There is no spatial index: every query
// is an exhaustive scan.
//
// A Datasource is not safe for concurrent use. Any number of
// Featuresets may read the same Datasource at once, but the Datasource
// must not be modified while any of them is still being read.
package geomem
