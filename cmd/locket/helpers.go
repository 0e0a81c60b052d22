// Shared helpers for locket CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/locket/internal/sqlite"
	"github.com/mesh-intelligence/locket/pkg/types"
)

// attachLedger resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer ledger.Detach().
func attachLedger() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	ledger := sqlite.NewBackend()
	if err := ledger.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach ledger: %w", err)
	}

	return ledger, nil
}

// requireActor returns the acting address from --as, exiting with a user
// error when it is missing. Every ownership-checked operation needs one.
func requireActor() string {
	if flagAs == "" {
		fmt.Fprintln(os.Stderr, "an acting address is required; pass --as <address>")
		os.Exit(exitUserError)
	}
	return flagAs
}

// output prints the indented JSON form of v when --json is set, otherwise
// the plain line.
func output(v any, plain string) error {
	if flagJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(plain)
	return nil
}

// outputEntity prints v as indented JSON regardless of --json; entities
// have no short plain form.
func outputEntity(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
