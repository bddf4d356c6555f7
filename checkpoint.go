package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var checkpointCmd = &cobra.Command{
	Use:   "checkpoint",
	Short: "Inspect or repair the stored checkpoint",
}

var checkpointGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored checkpoint (0 when absent)",
	Args:  cobra.NoArgs,
	RunE:  runCheckpointGet,
}

var checkpointSetCmd = &cobra.Command{
	Use:   "set <value>",
	Short: "Overwrite the stored checkpoint",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckpointSet,
}

func init() {
	checkpointCmd.AddCommand(checkpointGetCmd, checkpointSetCmd)
	rootCmd.AddCommand(checkpointCmd)
}

func runCheckpointGet(cmd *cobra.Command, _ []string) error {
	app, _, err := buildApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer app.Close()

	checkpoints := app.Service.Checkpoints()
	value, err := checkpoints.Get(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s=%d\n", checkpoints.Key(), value)
	return nil
}

func runCheckpointSet(cmd *cobra.Command, args []string) error {
	value, err := parseCheckpointValue(args[0])
	if err != nil {
		return err
	}

	app, _, err := buildApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer app.Close()

	checkpoints := app.Service.Checkpoints()
	if err := checkpoints.Set(cmd.Context(), value); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s=%d\n", checkpoints.Key(), value)
	return nil
}

func parseCheckpointValue(s string) (int64, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("checkpoint must be an integer: %w", err)
	}
	if value < 0 {
		return 0, fmt.Errorf("checkpoint must not be negative: %d", value)
	}
	return value, nil
}
