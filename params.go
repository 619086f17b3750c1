// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import (
	"strings"
)

// Params is a bundle of named configuration values used to construct a
// datasource. Keys a datasource does not recognize are ignored.
type Params map[string]interface{}

// String returns the string value of key, or def if key is absent. If
// the value is present but is not a string, the error wraps
// ErrInvalidParam.
func (p Params) String(key, def string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", wrapErr("%q must be a string, got %T", ErrInvalidParam, key, v)
}

// Bool returns the boolean value of key, or def if key is absent.
//
// Boolean values may be given as a Go bool, as any integer kind (where
// non-zero is true), or as one of the case-insensitive strings "true",
// "false", "yes", "no", "on", "off", "1" or "0". Any other value
// produces an error which wraps ErrInvalidParam.
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
		return false, wrapErr("%q has non-boolean value %q", ErrInvalidParam, key, x)
	case int:
		return x != 0, nil
	case int8:
		return x != 0, nil
	case int16:
		return x != 0, nil
	case int32:
		return x != 0, nil
	case int64:
		return x != 0, nil
	case uint:
		return x != 0, nil
	case uint8:
		return x != 0, nil
	case uint16:
		return x != 0, nil
	case uint32:
		return x != 0, nil
	case uint64:
		return x != 0, nil
	default:
		return false, wrapErr("%q must be a boolean, got %T", ErrInvalidParam, key, v)
	}
}
