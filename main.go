package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rssNotifier",
	Short: "Feed checkpoint notifier",
	Long:  "Polls a news feed, notifies about entries newer than the stored checkpoint, and advances the checkpoint.",
	// 結果のエラーは各コマンドがログに出す
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
