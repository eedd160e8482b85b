package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstar/internal/server"
	"github.com/katalvlaran/dijkstar/internal/telemetry"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a graph and path queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}

	fs := cmd.Flags()
	fs.String("addr", "localhost:8000", "Listen address")
	fs.String("graph", "", "Graph file to load at startup")
	fs.String("trace-exporter", "none", "Span exporter: stdout or none")
	a.bind(fs, "server.addr", "addr")
	a.bind(fs, "graph.file", "graph")
	a.bind(fs, "trace.exporter", "trace-exporter")

	return cmd
}

// serve runs the HTTP service until ctx is done.
func (a *app) serve(ctx context.Context) error {
	if a.cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	tcfg := telemetry.DefaultConfig()
	tcfg.ServiceName = a.cfg.Trace.ServiceName
	tcfg.ServiceVersion = Version
	tcfg.Exporter = a.cfg.Trace.Exporter
	shutdown, err := telemetry.Init(ctx, tcfg)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			a.logger.Warn("Telemetry shutdown failed", "error", err)
		}
	}()

	srv, err := server.New(server.Options{
		GraphFile:    a.cfg.Graph.File,
		TurnPenalty:  a.cfg.Graph.TurnPenalty,
		MaxBodyBytes: a.cfg.Server.MaxBodyBytes,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		ServiceName:  a.cfg.Trace.ServiceName,
		Logger:       a.logger,
	})
	if err != nil {
		return err
	}

	return srv.ListenAndServe(ctx, a.cfg.Server.Addr, a.cfg.Server.ShutdownTimeout)
}
