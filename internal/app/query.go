package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vk/protgraph/internal/ctxlog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/vk/protgraph/internal/app"

// Query runs one command against the engine and returns the value to
// render. Finding nothing is not an error; the only error is an unknown
// command. Every call is counted and timed under the command's name.
func (a *App) Query(ctx context.Context, cmd Command, arg string) (any, error) {
	spec, ok := commands[cmd]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", cmd)
	}

	ctx = ctxlog.With(ctx, "query_id", uuid.NewString(), "operation", string(cmd))
	logger := ctxlog.FromContext(ctx)

	_, span := otel.Tracer(tracerName).Start(ctx, "app.Query."+string(cmd),
		trace.WithAttributes(
			attribute.String("operation", string(cmd)),
			attribute.String("argument", arg),
		),
	)
	defer span.End()

	start := time.Now()
	result, hit := spec.run(a.engine, arg)
	elapsed := time.Since(start)

	a.metrics.observeQuery(cmd, hit, elapsed.Seconds())
	span.SetAttributes(attribute.Bool("hit", hit))
	logger.Debug("Query answered.", "argument", arg, "hit", hit, "elapsed", elapsed)

	return result, nil
}
