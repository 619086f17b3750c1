// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import (
	"sort"
	"sync"

	"github.com/gogama/geomem/envelope"
)

// Source is the read-only view of a datasource that a host application
// works with after opening it by name from a Registry.
type Source interface {
	Type() DatasourceType
	GeometryType() GeometryType
	Descriptor() LayerDescriptor
	Envelope() envelope.Box
	Features(q Query) *Featureset
	FeaturesAtPoint(pt envelope.Coord, tol float64) *Featureset
}

// A Factory creates a datasource from configuration parameters.
type Factory func(p Params) (Source, error)

// Registry maps datasource names to the factories which create them.
// The zero value is not usable; use NewRegistry. A Registry is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name. It is an error to register an
// empty name, a nil factory, or a name which is already registered.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return textErr("empty datasource name")
	} else if f == nil {
		return fmtErr("nil factory for datasource %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; ok {
		return wrapErr("%q", ErrDuplicateDatasource, name)
	}
	r.factories[name] = f
	return nil
}

// Open creates a new datasource using the factory registered under
// name. If no such factory exists, the error wraps
// ErrUnknownDatasource.
func (r *Registry) Open(name string, p Params) (Source, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, wrapErr("%q", ErrUnknownDatasource, name)
	}
	s, err := f(p)
	if err != nil {
		return nil, wrapErr("failed to open datasource %q", err, name)
	}
	return s, nil
}

// Names returns the registered datasource names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterMemory registers the in-memory datasource under Name. Panics
// if r is nil.
func RegisterMemory(r *Registry) error {
	if r == nil {
		textPanic("nil registry")
	}
	return r.Register(Name, func(p Params) (Source, error) {
		ds, err := NewDatasource(p)
		if err != nil {
			return nil, err
		}
		return ds, nil
	})
}
