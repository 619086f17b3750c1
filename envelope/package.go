// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package envelope provides the axis-aligned bounding rectangle used to
// describe feature extents and spatial query regions.
//
// The zero value of Box is the degenerate box at the origin, which is a
// valid box. Use Empty as the starting point when accumulating an
// extent, since expanding Empty by any valid box yields that box.
package envelope
