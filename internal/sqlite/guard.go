// Transfer guard: freeze and unfreeze of the underlying asset record.
// The composition operations in engine.go are the only callers; a frozen
// asset rejects any transfer that is not routed through decompose.
package sqlite

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/locket/pkg/types"
)

// freezeAsset forbids direct transfer of the asset while it is composed.
func freezeAsset(q querier, assetID string) error {
	return setFrozen(q, assetID, true)
}

// unfreezeAsset re-allows transfer after decompose.
func unfreezeAsset(q querier, assetID string) error {
	return setFrozen(q, assetID, false)
}

func setFrozen(q querier, assetID string, frozen bool) error {
	res, err := q.Exec(
		`UPDATE assets SET frozen = ?, updated_at = ? WHERE asset_id = ?`,
		frozen, formatTime(time.Now()), assetID,
	)
	if err != nil {
		return fmt.Errorf("setting frozen flag: %w", err)
	}
	return requireRow(res)
}

// requireTransferable rejects transfers of a frozen asset.
func requireTransferable(a *types.Asset) error {
	if a.Frozen {
		return types.ErrTransferLocked
	}
	return nil
}
