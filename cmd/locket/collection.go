// Collection commands for the locket CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/locket/pkg/types"
)

var (
	collectionURI        string
	collectionSupplyCap  uint64
	collectionRoyaltyBps uint64
	collectionCreator    string
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage collections",
}

var collectionCreateCmd = &cobra.Command{
	Use:   "create <name> <symbol>",
	Short: "Create a new collection",
	Long: `Create registers a new collection owned by the acting address.

Example:
  locket collection create wearables WEAR --as alice --uri ipfs://wearables
  locket collection create pets PETS --as alice --supply-cap 1000 --royalty-bps 250`,
	Args: cobra.ExactArgs(2),
	RunE: runCollectionCreate,
}

var collectionGetCmd = &cobra.Command{
	Use:   "get <collection-id>",
	Short: "Get a collection by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionGet,
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections",
	Args:  cobra.NoArgs,
	RunE:  runCollectionList,
}

func init() {
	collectionCreateCmd.Flags().StringVar(&collectionURI, "uri", "", "collection metadata URI")
	collectionCreateCmd.Flags().Uint64Var(&collectionSupplyCap, "supply-cap", 0, "maximum tokens mintable under the collection (0 = unbounded)")
	collectionCreateCmd.Flags().Uint64Var(&collectionRoyaltyBps, "royalty-bps", 0, "royalty in basis points (0 = none)")
	collectionListCmd.Flags().StringVar(&collectionCreator, "creator", "", "filter by creator address")

	collectionCmd.AddCommand(collectionCreateCmd)
	collectionCmd.AddCommand(collectionGetCmd)
	collectionCmd.AddCommand(collectionListCmd)
}

func runCollectionCreate(cmd *cobra.Command, args []string) error {
	creator := requireActor()

	ledger, err := attachLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "collection create:", err)
		os.Exit(exitSysError)
	}
	defer ledger.Detach()

	col := types.Collection{
		Name:   args[0],
		Symbol: args[1],
		URI:    collectionURI,
	}
	if collectionSupplyCap > 0 {
		col.SupplyCap = &collectionSupplyCap
	}
	if collectionRoyaltyBps > 0 {
		col.RoyaltyBps = &collectionRoyaltyBps
	}

	id, err := ledger.CreateCollection(creator, col)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	return output(map[string]string{"collection_id": id},
		"created collection "+id)
}

func runCollectionGet(cmd *cobra.Command, args []string) error {
	ledger, err := attachLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "collection get:", err)
		os.Exit(exitSysError)
	}
	defer ledger.Detach()

	col, err := ledger.GetCollection(args[0])
	if err != nil {
		return fmt.Errorf("get collection: %w", err)
	}
	return outputEntity(col)
}

func runCollectionList(cmd *cobra.Command, args []string) error {
	ledger, err := attachLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "collection list:", err)
		os.Exit(exitSysError)
	}
	defer ledger.Detach()

	cols, err := ledger.ListCollections(collectionCreator)
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	return outputEntity(cols)
}
