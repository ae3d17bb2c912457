package cmd

import (
	"fmt"

	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/SscSPs/bookkeeper/internal/presentation/format"
	"github.com/spf13/cobra"
)

func newJournalCmd(opts *globalOptions) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "仕訳帳を表示",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			var txns []domain.Transaction
			if account == "" {
				txns, err = a.services.Bookkeeping.ListJournal(ctx)
			} else {
				txns, err = a.services.Bookkeeping.ListJournalByAccount(ctx, account)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), format.FormatJournal(txns))
			return nil
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "only show transactions touching this account")
	return cmd
}
