package cmd

import (
	"fmt"

	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/SscSPs/bookkeeper/internal/presentation/format"
	"github.com/spf13/cobra"
)

func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "勘定科目の一覧を表示",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), format.FormatAccounts(domain.KnownAccounts()))
			return nil
		},
	}
}
