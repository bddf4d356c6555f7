package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Check the feed every FETCH_INTERVAL seconds until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app, cfg, err := buildApp(ctx, false)
	if err != nil {
		return err
	}
	defer app.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			log.Println("Shutdown signal received")
			cancel()
		case <-ctx.Done():
		}
	}()

	watch(ctx, app.Service, cfg.GetFetchInterval())
	return nil
}

// watch runs svc immediately and then on every tick until ctx is done. Runs
// never overlap.
func watch(ctx context.Context, svc runner, interval time.Duration) {
	log.Printf("Feed check interval: %v", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		log.Println("Checking feed...")
		if err := checkResult(svc.Run(ctx)); err != nil {
			log.Printf("Feed check error: %v", err)
		}
	}

	check()

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down...")
			return
		case <-ticker.C:
			check()
		}
	}
}
