// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_String(t *testing.T) {
	testCases := []struct {
		name     string
		params   Params
		expected string
		err      bool
	}{
		{"NilParams", nil, "def", false},
		{"Absent", Params{"other": "x"}, "def", false},
		{"NilValue", Params{"key": nil}, "def", false},
		{"Present", Params{"key": "latin1"}, "latin1", false},
		{"EmptyString", Params{"key": ""}, "", false},
		{"WrongType", Params{"key": 1.5}, "", true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual, err := testCase.params.String("key", "def")

			assert.Equal(t, testCase.expected, actual)
			if testCase.err {
				assert.ErrorIs(t, err, ErrInvalidParam)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParams_Bool(t *testing.T) {
	testCases := []struct {
		name     string
		value    interface{}
		expected bool
		err      string
	}{
		{"True", true, true, ""},
		{"False", false, false, ""},
		{"String.true", "true", true, ""},
		{"String.TRUE", "TRUE", true, ""},
		{"String.yes", "yes", true, ""},
		{"String.on", " on ", true, ""},
		{"String.1", "1", true, ""},
		{"String.false", "false", false, ""},
		{"String.No", "No", false, ""},
		{"String.off", "off", false, ""},
		{"String.0", "0", false, ""},
		{"Int.0", 0, false, ""},
		{"Int.1", 1, true, ""},
		{"Int64.-1", int64(-1), true, ""},
		{"Uint8.0", uint8(0), false, ""},
		{"String.Bad", "maybe", false, `geomem: "key" has non-boolean value "maybe": geomem: invalid parameter`},
		{"Float", 1.0, false, `geomem: "key" must be a boolean, got float64: geomem: invalid parameter`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			p := Params{"key": testCase.value}

			actual, err := p.Bool("key", !testCase.expected)

			if testCase.err == "" {
				assert.NoError(t, err)
				assert.Equal(t, testCase.expected, actual)
			} else {
				assert.EqualError(t, err, testCase.err)
				assert.ErrorIs(t, err, ErrInvalidParam)
			}
		})
	}

	t.Run("Default", func(t *testing.T) {
		for _, def := range []bool{true, false} {
			actual, err := Params{}.Bool("key", def)

			assert.NoError(t, err)
			assert.Equal(t, def, actual)
		}
	})
}
