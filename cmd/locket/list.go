// List commands for the locket CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listOwner string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List composables and objects",
}

var listComposablesCmd = &cobra.Command{
	Use:   "composables",
	Short: "List composable tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list composables:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		comps, err := ledger.ListComposables(listOwner)
		if err != nil {
			return fmt.Errorf("list composables: %w", err)
		}
		return outputEntity(comps)
	},
}

var listObjectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List object tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list objects:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		objs, err := ledger.ListObjects(listOwner)
		if err != nil {
			return fmt.Errorf("list objects: %w", err)
		}
		return outputEntity(objs)
	},
}

func init() {
	listCmd.PersistentFlags().StringVar(&listOwner, "owner", "", "filter by owner address")
	listCmd.AddCommand(listComposablesCmd)
	listCmd.AddCommand(listObjectsCmd)
}
