package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"rssNotifier/internal/application"
	"rssNotifier/internal/interfaces/bootstrap"
	"rssNotifier/internal/interfaces/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Check the feed once and notify about new entries",
	Args:  cobra.NoArgs,
	RunE:  runOnce,
}

var runDryRun bool

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Print the notification and keep the stored checkpoint unchanged")
	rootCmd.AddCommand(runCmd)
}

type runner interface {
	Run(ctx context.Context) *application.Result
}

func buildApp(ctx context.Context, dryRun bool) (*bootstrap.App, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	app, err := bootstrap.Build(ctx, cfg, bootstrap.Options{DryRun: dryRun})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return app, cfg, nil
}

func runOnce(cmd *cobra.Command, _ []string) error {
	app, _, err := buildApp(cmd.Context(), runDryRun)
	if err != nil {
		return err
	}
	defer app.Close()

	return checkResult(app.Service.Run(cmd.Context()))
}

// checkResult logs the result and turns a non-200 status into an error so the
// process exits non-zero.
func checkResult(result *application.Result) error {
	log.Printf("%d %s", result.StatusCode, result.Message)
	if result.StatusCode != http.StatusOK {
		if result.Err != nil {
			return result.Err
		}
		return fmt.Errorf("run failed with status %d", result.StatusCode)
	}
	return nil
}
