package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/outage-ua/gpvbot/app"
	"github.com/outage-ua/gpvbot/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "gpvbot",
	Short: "Scheduled power-outage notifier",
	Long: "gpvbot fetches scheduled outage data for configured grid groups from " +
		"outage-data-ua and the Yasno API, reconciles the two sources and posts " +
		"the schedule to the configured channels when it changed.",
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.json", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return app.New(cfg).Run(ctx)
}
