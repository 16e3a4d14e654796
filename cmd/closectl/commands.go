package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pagalotodo/internal/bootstrap"
	"pagalotodo/internal/usecase"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

type appBuilder func(ctx context.Context) (*bootstrap.App, error)

func newRootCmd(build appBuilder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "closectl",
		Short:         "PagaloTodo accounting close",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(runCmd(build))
	rootCmd.AddCommand(lastCmd(build))
	return rootCmd
}

func runCmd(build appBuilder) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute an accounting close and email every provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := build(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			summary, err := app.AccountingClose.Execute(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				b, err := sonic.Marshal(summary)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}
			_, err = fmt.Fprintln(out, summary.Message())
			return err
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output the summary as JSON")
	return cmd
}

func lastCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Show when the last accounting close ran",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := build(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			last, err := app.AccountingClose.Last(cmd.Context())
			if errors.Is(err, usecase.ErrAccountingCloseNotFound) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No accounting close recorded")
				return err
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", last.ID, last.ExecutedAt.UTC().Format(time.RFC3339))
			return err
		},
	}
}
