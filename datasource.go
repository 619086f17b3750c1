// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import (
	"reflect"

	"github.com/gogama/geomem/envelope"
)

const (
	// Name is the name the in-memory datasource registers under.
	Name = "memory"
	// DefaultEncoding is the encoding recorded in the LayerDescriptor
	// when no "encoding" parameter is given.
	DefaultEncoding = "utf-8"

	// ParamEncoding names the string parameter setting the descriptive
	// character encoding.
	ParamEncoding = "encoding"
	// ParamBBoxCheck names the boolean parameter controlling whether
	// Features filters by bounding box. It defaults to true.
	ParamBBoxCheck = "bbox_check"
)

// An Option configures a Datasource.
type Option func(ds *Datasource)

// WithLogger sets the logger a Datasource writes debug output to. The
// default logger discards everything.
func WithLogger(l *Logger) Option {
	return func(ds *Datasource) {
		if l != nil {
			ds.log = l.WithDatasource(Name)
		}
	}
}

// Datasource is an in-memory, insertion-ordered collection of features.
//
// The Datasource owns every feature pushed into it. It caches its
// extent the first time Envelope finds no valid cached value. Push and
// Clear do NOT invalidate the cached extent; call ResetEnvelope or
// SetEnvelope to replace it.
//
// A Datasource is not safe for concurrent use, and must not be
// modified while a Featureset created from it is still being read.
type Datasource struct {
	// desc is the descriptive metadata.
	desc LayerDescriptor
	// bboxCheck is the filtering policy applied by Features.
	bboxCheck bool
	// features holds the features in insertion order.
	features []Feature
	// extent is the cached extent. It is considered cached only while
	// it is valid.
	extent envelope.Box
	// log is never nil.
	log *Logger
}

// NewDatasource creates an empty Datasource configured from p. The
// recognized parameters are ParamEncoding and ParamBBoxCheck; any other
// keys are ignored. An error is returned only if a recognized parameter
// has a malformed value.
func NewDatasource(p Params, opts ...Option) (*Datasource, error) {
	encoding, err := p.String(ParamEncoding, DefaultEncoding)
	if err != nil {
		return nil, err
	}
	bboxCheck, err := p.Bool(ParamBBoxCheck, true)
	if err != nil {
		return nil, err
	}
	ds := &Datasource{
		desc: LayerDescriptor{
			Name:     Name,
			Encoding: encoding,
		},
		bboxCheck: bboxCheck,
		extent:    envelope.Empty,
		log:       NoopLogger(),
	}
	for _, opt := range opts {
		opt(ds)
	}
	return ds, nil
}

// Push appends a feature to the end of the Datasource. The feature is
// not validated in any way. Panics if f is nil or is a nil pointer
// wrapped in a Feature.
func (ds *Datasource) Push(f Feature) {
	if f == nil {
		textPanic("nil feature")
	} else if v := reflect.ValueOf(f); v.Kind() == reflect.Pointer && v.IsNil() {
		fmtPanic("nil feature (%T)", f)
	}
	ds.features = append(ds.features, f)
}

// Size returns the number of features in the Datasource.
func (ds *Datasource) Size() int {
	return len(ds.features)
}

// Clear removes every feature from the Datasource. The cached extent,
// if any, is kept.
func (ds *Datasource) Clear() {
	n := len(ds.features)
	clear(ds.features)
	ds.features = ds.features[:0]
	ds.log.logClear(n)
}

// Envelope returns the extent of the Datasource.
//
// If the cached extent is valid, because it was computed by an earlier
// call or set with SetEnvelope, it is returned as is, even if features
// have since been pushed or cleared. Otherwise the extent is computed
// as the union of the bounding boxes of every geometry of every
// feature, cached, and returned. An empty Datasource with no valid
// cached extent returns envelope.Empty.
func (ds *Datasource) Envelope() envelope.Box {
	if !ds.extent.Valid() {
		ext := envelope.Empty
		for _, f := range ds.features {
			b := Bounds(f)
			ext.Expand(&b)
		}
		ds.extent = ext
		ds.log.logExtent(len(ds.features), ext)
	}
	return ds.extent
}

// SetEnvelope replaces the cached extent with b unconditionally. Callers
// which already know the extent can use it to avoid a full scan.
// Setting an invalid box has the same effect as ResetEnvelope.
func (ds *Datasource) SetEnvelope(b envelope.Box) {
	ds.extent = b
}

// ResetEnvelope discards the cached extent so the next call to Envelope
// recomputes it from the current features.
func (ds *Datasource) ResetEnvelope() {
	ds.extent = envelope.Empty
}

// Features returns a Featureset over the features matching q. If the
// Datasource was configured with bbox_check disabled, the Featureset
// yields every feature and q is ignored.
func (ds *Datasource) Features(q Query) *Featureset {
	return newFeatureset(ds, q.Box(), ds.bboxCheck)
}

// FeaturesAtPoint returns a Featureset over the features whose bounding
// box intersects the square of half-width tol centered on pt. The
// bounding box test is always applied, regardless of the bbox_check
// setting.
func (ds *Datasource) FeaturesAtPoint(pt envelope.Coord, tol float64) *Featureset {
	box := envelope.FromCoord(pt)
	box.Pad(tol)
	ds.log.logPointQuery(pt, tol, box)
	return newFeatureset(ds, box, true)
}

// BBoxCheck reports whether Features applies bounding box filtering.
func (ds *Datasource) BBoxCheck() bool {
	return ds.bboxCheck
}

// Type returns Vector.
func (ds *Datasource) Type() DatasourceType {
	return Vector
}

// GeometryType returns Collection, since features of any geometry type
// may be pushed.
func (ds *Datasource) GeometryType() GeometryType {
	return Collection
}

// Descriptor returns the Datasource's descriptive metadata.
func (ds *Datasource) Descriptor() LayerDescriptor {
	return ds.desc
}
