// Compose and decompose commands for the locket CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose <composable-id> <object-id>",
	Short: "Compose an object into a composable",
	Long: `Compose moves a free object owned by the acting address into the
composable's child set. The object's underlying asset transfers to the
composable and is locked against direct transfer.

Example:
  locket compose <composable-id> <object-id> --as alice`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := requireActor()

		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "compose:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		if err := ledger.Compose(owner, args[0], args[1]); err != nil {
			return fmt.Errorf("compose: %w", err)
		}
		return output(map[string]string{
			"composable_id": args[0],
			"object_id":     args[1],
		}, "composed "+args[1]+" into "+args[0])
	},
}

var decomposeCmd = &cobra.Command{
	Use:   "decompose <composable-id> <object-id>",
	Short: "Decompose an object out of a composable",
	Long: `Decompose removes an object from the composable's child set,
unlocks it, and returns it to the acting address.

Example:
  locket decompose <composable-id> <object-id> --as alice`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := requireActor()

		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "decompose:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		if err := ledger.Decompose(owner, args[0], args[1]); err != nil {
			return fmt.Errorf("decompose: %w", err)
		}
		return output(map[string]string{
			"composable_id": args[0],
			"object_id":     args[1],
		}, "decomposed "+args[1]+" from "+args[0])
	},
}

var decomposeAllCmd = &cobra.Command{
	Use:   "decompose-all <composable-id>",
	Short: "Decompose every child of a composable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := requireActor()

		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "decompose-all:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		if err := ledger.DecomposeAll(owner, args[0]); err != nil {
			return fmt.Errorf("decompose-all: %w", err)
		}
		return output(map[string]string{"composable_id": args[0]},
			"decomposed all children of "+args[0])
	},
}
