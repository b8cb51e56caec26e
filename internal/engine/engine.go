package engine

import (
	"context"
	"errors"
	"time"

	"github.com/vk/protgraph/internal/ctxlog"
	"github.com/vk/protgraph/internal/graphstore"
	"github.com/vk/protgraph/internal/nodeid"
)

// Engine answers identifier and traversal queries over an immutable graph.
type Engine struct {
	store graphstore.Store
	idx   *indices
}

// Option configures an Engine at construction time.
type Option func(*options)

type options struct {
	proteinKind string
}

// WithProteinKind overrides the node kind that marks protein-scoped ids
// (`Protein` by default, i.e. the `Protein::` prefix).
func WithProteinKind(kind string) Option {
	return func(o *options) {
		if kind != "" {
			o.proteinKind = kind
		}
	}
}

// New builds every index from the store and returns a ready engine. The store
// must already hold all four tables; loaders report missing tables with a
// graphstore.DataLoadError before this point.
func New(ctx context.Context, store graphstore.Store, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, errors.New("engine: graph store is nil")
	}

	o := options{proteinKind: nodeid.KindProtein}
	for _, opt := range opts {
		opt(&o)
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building lookup indices.", "protein_kind", o.proteinKind)
	start := time.Now()

	e := &Engine{
		store: store,
		idx:   buildIndices(store, o.proteinKind),
	}

	stats := e.Stats()
	logger.Info("Lookup indices built.",
		"elapsed", time.Since(start),
		"details", stats.DetailsEntries,
		"uuids", stats.UUIDEntries,
		"aliases", stats.AliasEntries,
		"names", stats.NameEntries,
	)
	return e, nil
}

// Stats reports table and index sizes.
func (e *Engine) Stats() Stats {
	s := e.store.Stats()
	return Stats{
		ProteinNodes:      s.ProteinNodes,
		GoTermNodes:       s.GoTermNodes,
		Edges:             s.Edges,
		IdentifierRecords: s.IdentifierRecords,
		DetailsEntries:    e.idx.details.Len(),
		UUIDEntries:       e.idx.uuids.Len(),
		AliasEntries:      e.idx.aliases.Len(),
		NameEntries:       e.idx.names.Len(),
	}
}
