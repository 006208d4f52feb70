package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/poi5en/termfolio/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server. Every connection gets its own terminal session;
scores are shared by everyone on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.termfolio/host_key

Examples:
  termfolio serve                           # Listen on the configured address
  termfolio serve --ssh :2222               # Listen on port 2222
  termfolio serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	if flagSSHAddr != "" {
		cfg.Server.SSHAddr = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger := newLogger(os.Stderr, flagDebug)
	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.SSHAddr,
		HostKeyPath: cfg.Server.HostKeyPath,
		IdleTimeout: cfg.Server.IdleTimeout(),
		Config:      cfg,
	}, store, logger.WithPrefix("termfolio-ssh"))
	if err != nil {
		fatal("creating server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fatal("server: %v", err)
	}
}
