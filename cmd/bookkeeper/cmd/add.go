package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeper/internal/presentation/prompt"
	"github.com/spf13/cobra"
)

func newAddCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "仕訳を追加",
		Long: `Interactively record one transaction.

An empty date means today and an empty credit amount copies the debit amount.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			txn, err := prompt.ReadTransaction(cmd.InOrStdin(), cmd.OutOrStdout(), time.Now())
			if err != nil {
				return err
			}

			stored, err := a.services.Bookkeeping.AddTransaction(ctx, txn)
			if err != nil {
				return err
			}

			slog.Debug("Transaction recorded", slog.String("id", stored.ID()))
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "✓ 仕訳を追加しました")
			return nil
		},
	}
}
