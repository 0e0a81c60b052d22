// Supply tracker: per-composable mint accounting. Only the mint and burn
// paths call reserve/release; the counters live on the composable row so a
// burned composable takes its counters with it.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/locket/pkg/types"
)

// getSupply reads the counters for a composable.
func getSupply(q querier, composableID string) (*types.Supply, error) {
	var s types.Supply
	err := q.QueryRow(
		`SELECT total_supply, remaining_supply, total_minted
		 FROM composables WHERE composable_id = ?`, composableID,
	).Scan(&s.TotalSupply, &s.RemainingSupply, &s.TotalMinted)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning supply: %w", err)
	}
	return &s, nil
}

func putSupply(q querier, composableID string, s *types.Supply) error {
	res, err := q.Exec(
		`UPDATE composables SET total_supply = ?, remaining_supply = ?,
		    total_minted = ? WHERE composable_id = ?`,
		s.TotalSupply, s.RemainingSupply, s.TotalMinted, composableID,
	)
	if err != nil {
		return fmt.Errorf("updating supply: %w", err)
	}
	return requireRow(res)
}

// reserveSupply consumes one unit of the composable's remaining supply.
// Returns ErrSupplyExhausted when nothing remains.
func reserveSupply(q querier, composableID string) error {
	s, err := getSupply(q, composableID)
	if err != nil {
		return err
	}
	if err := s.Reserve(); err != nil {
		return err
	}
	return putSupply(q, composableID, s)
}

// releaseSupply returns one unit after an object burn. The invariant check
// inside Supply.Release turns counter corruption into ErrSupplyInvariant
// instead of letting it propagate silently.
func releaseSupply(q querier, composableID string) error {
	s, err := getSupply(q, composableID)
	if err != nil {
		return err
	}
	if err := s.Release(); err != nil {
		return err
	}
	return putSupply(q, composableID, s)
}
