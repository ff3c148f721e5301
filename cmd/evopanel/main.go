package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evohq/evopanel/internal/app"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "evopanel: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "evopanel",
		Short:         "Terminal control panel for the evo mock server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, opts)
		},
	}

	root.Flags().StringVar(&opts.ConfigPath, "config", "", "override config path (default ~/.config/evopanel/config.toml)")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "override prefs path (default ~/.config/evopanel/prefs.toml)")
	root.Flags().StringVar(&opts.AdminBind, "bind", "", "admin API address, host:port (overrides config)")
	root.Flags().IntVar(&opts.PollEvery, "poll", 0, "refresh interval in seconds (defaults to config value)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the evopanel version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	return root
}
