// merge_account.go implements C4: the per-account merge engine, combining
// multiple AccountUpdateWithTx into one AccountUpdate per address per block.
package core

import "fmt"

// Merge combines other into self, in place. Only the same-address
// invariant is enforced; used in contexts (e.g. within Merge on
// AccountUpdateWithTx) where block/tx ordering is already guaranteed by the
// caller.
func (u *AccountUpdate) Merge(other AccountUpdate) error {
	if u.Address != other.Address {
		return NewMergeError(
			"can't merge AccountUpdates from differing identities; expected %s, got %s",
			u.Address.Hex(), other.Address.Hex(),
		)
	}
	if u.Slots == nil {
		u.Slots = make(map[U256]U256, len(other.Slots))
	}
	for k, v := range other.Slots {
		u.Slots[k] = v
	}
	if other.Balance != nil {
		u.Balance = other.Balance
	}
	if other.HasCode {
		u.Code = other.Code
		u.HasCode = true
	}
	// change is retained from self: the composite keeps the earliest
	// classification (a Creation cannot be downgraded by later Updates).
	return nil
}

// Merge combines this update with other.
//
//   - The block from which both updates came must be the same.
//   - The transactions for each update must be distinct.
//   - other's transaction must have occurred no earlier than self's
//     (self.tx.index <= other.tx.index).
//
// The merged update keeps other's transaction as the representative.
func (u *AccountUpdateWithTx) Merge(other AccountUpdateWithTx) error {
	if u.Tx.BlockHash != other.Tx.BlockHash {
		return NewMergeError(
			"can't merge AccountUpdates from different blocks: %s != %s",
			u.Tx.BlockHash.Hex(), other.Tx.BlockHash.Hex(),
		)
	}
	if u.Tx.Hash == other.Tx.Hash {
		return NewMergeError("can't merge AccountUpdates from the same transaction: %s", u.Tx.Hash.Hex())
	}
	if u.Tx.Index > other.Tx.Index {
		return NewMergeError("can't merge AccountUpdates with lower transaction index: %d > %d", u.Tx.Index, other.Tx.Index)
	}
	u.Tx = other.Tx
	return u.Update.Merge(other.Update)
}

// MergeAccountUpdates folds a sequence of AccountUpdateWithTx, already
// sorted ascending by tx.index, into one AccountUpdate per address. It is
// the core of BlockContractChanges.AggregateUpdates (C6).
func MergeAccountUpdates(updates []AccountUpdateWithTx) (map[Address]AccountUpdate, error) {
	merged := make(map[Address]AccountUpdateWithTx, len(updates))
	order := make([]Address, 0, len(updates))
	for _, upd := range updates {
		existing, ok := merged[upd.Update.Address]
		if !ok {
			merged[upd.Update.Address] = upd
			order = append(order, upd.Update.Address)
			continue
		}
		if err := existing.Merge(upd); err != nil {
			return nil, fmt.Errorf("merging account %s: %w", upd.Update.Address.Hex(), err)
		}
		merged[upd.Update.Address] = existing
	}
	out := make(map[Address]AccountUpdate, len(merged))
	for _, addr := range order {
		out[addr] = merged[addr].Update
	}
	return out, nil
}
