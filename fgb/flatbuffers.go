// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgb

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
)

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// This function exists because FlatBuffer's Go code doesn't use
// standard Go error handling, allegedly for performance reasons, and
// consequently any invalid attempt to interact with FlatBuffer data
// may trigger a panic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}

// ReadFeature returns the size-prefixed root Feature table at the start
// of buf. The buffer is not copied.
//
// Only the size prefix and root offset are checked; a corrupt table
// body is detected lazily, when the Feature's accessors are used.
func ReadFeature(buf []byte) (*Feature, error) {
	size, err := tableSize(buf)
	if err != nil {
		return nil, err
	}
	if size < flatbuffers.SizeUOffsetT {
		return nil, fmtErr("size prefix %d too small for a table", size)
	}
	var f *Feature
	err = safeFlatBuffersInteraction(func() error {
		f = GetSizePrefixedRootAsFeature(buf, 0)
		if uint64(f._tab.Pos) >= uint64(len(buf)) {
			return fmtErr("root table offset %d out of range (Len=%d)", f._tab.Pos, len(buf))
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr("failed to read feature", err)
	}
	return f, nil
}

// tableSize returns the size prefix of a size-prefixed FlatBuffers
// table, checking that the buffer is long enough to hold it.
func tableSize(buf []byte) (size uint32, err error) {
	if len(buf) < flatbuffers.SizeUint32 {
		err = wrapErr("no size prefix (Len=%d)", ErrTruncated, len(buf))
		return
	}
	size = flatbuffers.GetUint32(buf)
	if uint64(size) > uint64(len(buf)-flatbuffers.SizeUint32) {
		err = wrapErr("size prefix %d exceeds buffer (Len=%d)", ErrTruncated, size, len(buf))
	}
	return
}
