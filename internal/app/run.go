package app

import (
	"context"
	"errors"

	"github.com/vk/protgraph/internal/ctxlog"
	"github.com/vk/protgraph/internal/render"
)

// Run executes the configured query, renders its result and, when serving,
// keeps the health server up until ctx is cancelled.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	if err := a.startHealthcheckServer(ctx); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.closeHealthcheckServer(ctx))
	}()

	if a.config.Command != "" {
		result, err := a.Query(ctx, a.config.Command, a.config.Argument)
		if err != nil {
			return err
		}
		if err := render.Write(a.outW, a.config.Output, result); err != nil {
			return err
		}
	}

	if a.config.Serve {
		if a.httpServer == nil {
			a.logger.Warn("Serving without a health check port, nothing is exposed.")
		}
		a.logger.Info("Serving until interrupted.")
		<-ctx.Done()
		a.logger.Info("Shutdown signal received.")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
