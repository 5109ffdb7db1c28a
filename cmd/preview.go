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

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the current schedule to stdout without delivering it",
	RunE:  preview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func preview(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	msg, err := app.New(cfg).Preview(ctx)
	if err != nil {
		return err
	}
	if msg == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "(no schedule data for the configured groups)")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
