package tableio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/vk/protgraph/internal/ctxlog"
	"github.com/vk/protgraph/internal/graphstore"
	"github.com/vk/protgraph/internal/inmemorystore"
	"golang.org/x/sync/errgroup"
)

// Paths locates the four tables on disk.
type Paths struct {
	ProteinNodes      string
	GoTermNodes       string
	Edges             string
	IdentifierRecords string
}

// Load reads all four tables concurrently and returns them as a read-only
// store. The first failing table cancels the others; its error is returned
// as a *graphstore.DataLoadError.
func Load(ctx context.Context, paths Paths) (*inmemorystore.Store, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Table loading started.",
		"protein_nodes", paths.ProteinNodes,
		"go_term_nodes", paths.GoTermNodes,
		"edges", paths.Edges,
		"identifier_records", paths.IdentifierRecords,
	)
	start := time.Now()

	var tables inmemorystore.Tables
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		tables.ProteinNodes, err = loadTable(gctx, graphstore.TableProteinNodes, paths.ProteinNodes, toProteinNode)
		return err
	})
	g.Go(func() (err error) {
		tables.GoTermNodes, err = loadTable(gctx, graphstore.TableGoTermNodes, paths.GoTermNodes, toGoTermNode)
		return err
	})
	g.Go(func() (err error) {
		tables.Edges, err = loadTable(gctx, graphstore.TableEdges, paths.Edges, toEdge)
		return err
	})
	g.Go(func() (err error) {
		tables.IdentifierRecords, err = loadTable(gctx, graphstore.TableIdentifierRecords, paths.IdentifierRecords, toIdentifierRecord)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	store := inmemorystore.New(tables)
	stats := store.Stats()
	logger.Info("Tables loaded.",
		"elapsed", time.Since(start),
		"protein_nodes", stats.ProteinNodes,
		"go_term_nodes", stats.GoTermNodes,
		"edges", stats.Edges,
		"identifier_records", stats.IdentifierRecords,
	)
	return store, nil
}

// loadTable reads one table file and converts every row with convert.
func loadTable[T any](ctx context.Context, table, path string, convert func(row) (T, error)) ([]T, error) {
	fail := func(err error) ([]T, error) {
		return nil, &graphstore.DataLoadError{Table: table, Path: path, Err: err}
	}

	if path == "" {
		return fail(errors.New("no path configured"))
	}
	format, err := DetectFormat(path)
	if err != nil {
		return fail(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	rows, err := decodeRows(ctx, f, format)
	if err != nil {
		return fail(err)
	}

	out := make([]T, 0, len(rows))
	for i, r := range rows {
		v, err := convert(r)
		if err != nil {
			return fail(fmt.Errorf("row %d: %w", i+1, err))
		}
		out = append(out, v)
	}

	ctxlog.FromContext(ctx).Debug("Table read.", "table", table, "path", path, "format", format, "rows", len(out))
	return out, nil
}
