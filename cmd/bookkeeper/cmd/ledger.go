package cmd

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeper/internal/presentation/format"
	"github.com/spf13/cobra"
)

func newLedgerCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "ledger <勘定科目>",
		Short:   "元帳を表示",
		Example: "  bookkeeper ledger 普通預金\n  bookkeeper ledger 売掛金",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("勘定科目名を指定してください")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			accountName := args[0]
			entries, err := a.services.Bookkeeping.ViewLedger(ctx, accountName)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), format.FormatLedger(accountName, entries))
			return nil
		},
	}
}
