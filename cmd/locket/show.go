// Show commands retrieve entities and derived views by ID.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show tokens, assets, children, and supply",
}

var showComposableCmd = &cobra.Command{
	Use:   "composable <composable-id>",
	Short: "Show a composable with its child list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show composable:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		comp, err := ledger.GetComposable(args[0])
		if err != nil {
			return fmt.Errorf("show composable: %w", err)
		}
		return outputEntity(comp)
	},
}

var showObjectCmd = &cobra.Command{
	Use:   "object <object-id>",
	Short: "Show an object wrapper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show object:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		obj, err := ledger.GetObject(args[0])
		if err != nil {
			return fmt.Errorf("show object: %w", err)
		}
		return outputEntity(obj)
	},
}

var showAssetCmd = &cobra.Command{
	Use:   "asset <asset-id>",
	Short: "Show an underlying asset record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show asset:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		asset, err := ledger.GetAsset(args[0])
		if err != nil {
			return fmt.Errorf("show asset: %w", err)
		}
		return outputEntity(asset)
	},
}

var showChildrenCmd = &cobra.Command{
	Use:   "children <composable-id>",
	Short: "Show a composable's children in insertion order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show children:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		children, err := ledger.GetChildren(args[0])
		if err != nil {
			return fmt.Errorf("show children: %w", err)
		}
		return outputEntity(children)
	},
}

var showSupplyCmd = &cobra.Command{
	Use:   "supply <composable-id>",
	Short: "Show a composable's supply counters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show supply:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		supply, err := ledger.GetSupply(args[0])
		if err != nil {
			return fmt.Errorf("show supply: %w", err)
		}
		return outputEntity(supply)
	},
}

func init() {
	showCmd.AddCommand(showComposableCmd)
	showCmd.AddCommand(showObjectCmd)
	showCmd.AddCommand(showAssetCmd)
	showCmd.AddCommand(showChildrenCmd)
	showCmd.AddCommand(showSupplyCmd)
}
