// Burn commands for the locket CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "Burn composable and object tokens",
}

var burnComposableCmd = &cobra.Command{
	Use:   "composable <composable-id>",
	Short: "Burn a composable token",
	Long: `Burn composable releases any children back to the acting address,
then irreversibly destroys the composable and its supply counters.

Example:
  locket burn composable <composable-id> --as alice`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := requireActor()

		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "burn composable:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		if err := ledger.BurnComposable(owner, args[0]); err != nil {
			return fmt.Errorf("burn composable: %w", err)
		}
		return output(map[string]string{"composable_id": args[0]},
			"burned composable "+args[0])
	},
}

var burnObjectCmd = &cobra.Command{
	Use:   "object <composable-id> <object-id>",
	Short: "Burn an object token",
	Long: `Burn object irreversibly destroys a free object and returns one
unit to the supply of the composable it was minted against. A composed
object must be decomposed first.

Example:
  locket burn object <composable-id> <object-id> --as alice`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := requireActor()

		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "burn object:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		if err := ledger.BurnObject(owner, args[0], args[1]); err != nil {
			return fmt.Errorf("burn object: %w", err)
		}
		return output(map[string]string{
			"composable_id": args[0],
			"object_id":     args[1],
		}, "burned object "+args[1])
	},
}

func init() {
	burnCmd.AddCommand(burnComposableCmd)
	burnCmd.AddCommand(burnObjectCmd)
}
