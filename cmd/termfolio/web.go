package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/poi5en/termfolio/internal/platform/web"
)

var flagHTTPAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the HTTP API",
	Long: `Serve terminal sessions as JSON for a browser front end.

Endpoints:
  GET    /api/commands
  POST   /api/sessions
  POST   /api/sessions/:id/submit
  GET    /api/sessions/:id/complete?partial=
  POST   /api/sessions/:id/history/prev
  POST   /api/sessions/:id/history/next
  DELETE /api/sessions/:id
  GET    /api/scores

The address comes from --http, TERMFOLIO_HTTP_ADDR, PORT or the config.`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP address (host:port, default from config)")
}

func runWeb(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	if flagHTTPAddr != "" {
		cfg.Server.HTTPAddr = flagHTTPAddr
	}
	if !flagDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := newLogger(os.Stderr, flagDebug)
	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	server := web.NewServer(cfg, scoreboard(store), logger.WithPrefix("termfolio-web"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx, cfg.Server.HTTPAddr); err != nil {
		fatal("server: %v", err)
	}
}
