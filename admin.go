// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/puzzlebox/identifier"
	"github.com/danielhkuo/puzzlebox/models"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "Inspect and moderate stored puzzles",
}

var (
	listSort   string
	listOrder  string
	listOffset int
	listLimit  int
)

var puzzlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List puzzles as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		puzzles, err := svc.ListPuzzles(cmd.Context(), listSort, listOrder, listOffset, listLimit)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), puzzles)
	},
}

var puzzlesDeleteCmd = &cobra.Command{
	Use:   "delete CODE",
	Short: "Delete a puzzle by display code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.DeletePuzzle(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted puzzle %s\n", identifier.NormalizeCode(args[0]))
		return nil
	},
}

var feedbackCmd = logCommand("feedback", "feedback entries",
	func(ctx context.Context) ([]models.Record, error) { return svc.ListFeedback(ctx) },
	func(ctx context.Context, id int64) error { return svc.DeleteFeedback(ctx, id) },
)

var errorsCmd = logCommand("errors", "client error reports",
	func(ctx context.Context) ([]models.Record, error) { return svc.ListErrors(ctx) },
	func(ctx context.Context, id int64) error { return svc.DeleteError(ctx, id) },
)

func init() {
	puzzlesListCmd.Flags().StringVar(&listSort, "sort", models.SortByDate, "Sort key")
	puzzlesListCmd.Flags().StringVar(&listOrder, "order", models.OrderAsc, "Sort order (asc or desc)")
	puzzlesListCmd.Flags().IntVar(&listOffset, "offset", 0, "Number of puzzles to skip")
	puzzlesListCmd.Flags().IntVar(&listLimit, "limit", identifier.DefaultPageSize, "Maximum puzzles to return")

	puzzlesCmd.AddCommand(puzzlesListCmd)
	puzzlesCmd.AddCommand(puzzlesDeleteCmd)
}

// logCommand builds the list/delete command pair for one log. svc is only
// set once PersistentPreRunE has run, so the service calls stay in closures.
func logCommand(
	use, what string,
	list func(ctx context.Context) ([]models.Record, error),
	del func(ctx context.Context, id int64) error,
) *cobra.Command {
	parent := &cobra.Command{
		Use:   use,
		Short: "Inspect and moderate " + what,
	}

	parent.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List " + what + " as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := list(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), records)
		},
	})

	parent.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete one of the " + what,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			if err := del(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %d\n", use, id)
			return nil
		},
	})

	return parent
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
