// Package types defines the Ledger interface, entity types, and standard
// error values for the Locket composable-token system.
package types
