package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// run starts the portal and blocks until ctx is cancelled or fx requests shutdown.
func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start client portal: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()

	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop client portal: %w", err)
	}
	return nil
}
