// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParam is returned when a recognized configuration
	// parameter has a value of the wrong type or format.
	ErrInvalidParam = textErr("invalid parameter")
	// ErrUnknownDatasource is returned when opening a datasource whose
	// name has not been registered.
	ErrUnknownDatasource = textErr("unknown datasource")
	// ErrDuplicateDatasource is returned when registering a datasource
	// name that is already taken.
	ErrDuplicateDatasource = textErr("datasource already registered")
)

const packageName = "geomem: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
