package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Subscription information",
}

var accountShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !m.HasSubscription() {
			fmt.Fprintln(out, "Could not retrieve subscription information")
			return nil
		}
		sub := m.Subscription()
		fmt.Fprintf(out, "Name: %s\n", sub.Name)
		fmt.Fprintf(out, "ID: %s\n", sub.ID)
		fmt.Fprintf(out, "State: %s\n", sub.State)
		fmt.Fprintf(out, "Tenant ID: %s\n", sub.TenantID)
		fmt.Fprintf(out, "Is Default: %v\n", sub.IsDefault)
		return nil
	},
}

func GetAccountCmd() *cobra.Command {
	accountCmd.AddCommand(accountShowCmd)
	return accountCmd
}
