package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
)

// serve runs the HTTP server until SIGINT or SIGTERM and returns the exit code.
func (app *application) serve(ctx context.Context) int {
	addr := fmt.Sprintf(":%d", app.config.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Bind before serving so a taken port fails startup instead of a goroutine.
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		app.logger.Error("failed to listen", "addr", addr, "error", err)
		app.cleanup()
		return 1
	}

	go func() {
		app.logger.Info("starting server", "port", app.config.Server.Port)
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("server failed", "error", err)
			app.cleanup()
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, app.config.Server.ShutdownTimeout(), map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			app.logger.Info("shutting down server")
			err := server.Shutdown(ctx)
			app.cleanup()
			return err
		},
	})

	exitCode := <-wait
	app.logger.Info("server stopped", "exit_code", exitCode)
	return exitCode
}
