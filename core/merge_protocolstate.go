// merge_protocolstate.go implements C5: the per-component merge engine.
package core

import "fmt"

// Merge combines other into self. Both must share the same component id.
// For every key in other's deleted set, the corresponding key is removed
// from self's updated set (and vice versa) before the sets are extended, so
// the final invariant (updated ∩ deleted == ∅) always holds.
func (s *ProtocolState) Merge(other ProtocolState) error {
	if s.ComponentID != other.ComponentID {
		return NewMergeError(
			"can't merge ProtocolStates from differing identities; expected %s, got %s",
			s.ComponentID, other.ComponentID,
		)
	}
	s.ModifyTx = other.ModifyTx
	if s.UpdatedAttributes == nil {
		s.UpdatedAttributes = make(map[string]Bytes)
	}
	if s.DeletedAttributes == nil {
		s.DeletedAttributes = make(map[string]Bytes)
	}
	for attr := range other.DeletedAttributes {
		delete(s.UpdatedAttributes, attr)
	}
	for attr := range other.UpdatedAttributes {
		delete(s.DeletedAttributes, attr)
	}
	for k, v := range other.UpdatedAttributes {
		s.UpdatedAttributes[k] = v
	}
	for k, v := range other.DeletedAttributes {
		s.DeletedAttributes[k] = v
	}
	return nil
}

// Merge combines this ProtocolStatesWithTx with other, enforcing the same
// three tx invariants as AccountUpdateWithTx.Merge (same block, distinct
// tx, non-decreasing index), then merges component-wise.
func (p *ProtocolStatesWithTx) Merge(other ProtocolStatesWithTx) error {
	if p.Tx.BlockHash != other.Tx.BlockHash {
		return NewMergeError(
			"can't merge ProtocolStates from different blocks: %s != %s",
			p.Tx.BlockHash.Hex(), other.Tx.BlockHash.Hex(),
		)
	}
	if p.Tx.Hash == other.Tx.Hash {
		return NewMergeError("can't merge ProtocolStates from the same transaction: %s", p.Tx.Hash.Hex())
	}
	if p.Tx.Index > other.Tx.Index {
		return NewMergeError("can't merge ProtocolStates with lower transaction index: %d > %d", p.Tx.Index, other.Tx.Index)
	}
	p.Tx = other.Tx
	if p.ProtocolStates == nil {
		p.ProtocolStates = make(map[ContractId]ProtocolState, len(other.ProtocolStates))
	}
	for id, state := range other.ProtocolStates {
		existing, ok := p.ProtocolStates[id]
		if !ok {
			p.ProtocolStates[id] = state
			continue
		}
		if err := existing.Merge(state); err != nil {
			return fmt.Errorf("merging component %s: %w", id, err)
		}
		p.ProtocolStates[id] = existing
	}
	return nil
}

// MergeProtocolStates folds a sequence of ProtocolStatesWithTx, already
// sorted ascending by tx.index, into a single ProtocolStatesWithTx. It is
// the core of BlockEntityChanges.AggregateUpdates (C6).
func MergeProtocolStates(updates []ProtocolStatesWithTx) (ProtocolStatesWithTx, error) {
	if len(updates) == 0 {
		return ProtocolStatesWithTx{ProtocolStates: map[ContractId]ProtocolState{}}, nil
	}
	acc := updates[0]
	for _, next := range updates[1:] {
		if err := acc.Merge(next); err != nil {
			return ProtocolStatesWithTx{}, err
		}
	}
	return acc, nil
}
