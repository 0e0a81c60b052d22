// Version command for the locket CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/locket/pkg/locket"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the locket version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("locket", locket.Version)
	},
}
