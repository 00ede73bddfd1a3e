package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-memory/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host Sky Memory over SSH",
	Long: `Host Sky Memory for remote players over SSH.

Every connection opens its own level picker. Coins, owned planes and the
flight log live in the server database, so all players share one wallet.
Without --host-key a key is generated once at ~/.skymemory/host_key.

Examples:
  skymemory serve
  skymemory serve --ssh 0.0.0.0:2222 --idle-timeout 10m
  skymemory serve --db /var/lib/skymemory/skymemory.db`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect players idle for this long")
}

func runServe(_ *cobra.Command, _ []string) {
	levels, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
		Game:        levels,
		Logger:      newLogger("skymemory-ssh"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot start server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sky Memory is listening on %s (ssh localhost -p %s), Ctrl+C stops it\n", flagSSHAddr, port(flagSSHAddr))

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
