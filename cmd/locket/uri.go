// Set-uri command for the locket CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var setURICmd = &cobra.Command{
	Use:   "set-uri <id> <uri>",
	Short: "Replace the metadata URI of a token or asset",
	Long: `Set-uri rewrites the underlying asset URI for a composable, object,
or asset ID. The ledger stores the replacement verbatim; callers that
regenerate URIs after compose or decompose use this hook.

Example:
  locket set-uri <object-id> ipfs://hat-v2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := attachLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "set-uri:", err)
			os.Exit(exitSysError)
		}
		defer ledger.Detach()

		if err := ledger.UpdateURI(args[0], args[1]); err != nil {
			return fmt.Errorf("set-uri: %w", err)
		}
		return output(map[string]string{"id": args[0], "uri": args[1]},
			"updated URI of "+args[0])
	},
}
