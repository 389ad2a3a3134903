package core

import (
	"github.com/synnergy-labs/chainstate-extractor/pb"
)

// ProtocolState is the dynamic per-component state delta (spec §3). After
// any merge, updated_attributes and deleted_attributes key-sets must remain
// disjoint.
type ProtocolState struct {
	ComponentID       ContractId
	UpdatedAttributes map[string]Bytes
	DeletedAttributes map[string]Bytes
	ModifyTx          Hash256
}

// ProtocolStateFromMessage decodes an upstream pb.EntityChanges into a
// ProtocolState. Each attribute is classified by its Change field:
// Update|Creation go to UpdatedAttributes, Deletion goes to
// DeletedAttributes.
func ProtocolStateFromMessage(msg pb.EntityChanges, tx Transaction) (ProtocolState, error) {
	updated := make(map[string]Bytes)
	deleted := make(map[string]Bytes)
	for _, attr := range msg.Attributes {
		change, err := ParseChangeType(int32(attr.Change))
		if err != nil {
			return ProtocolState{}, err
		}
		value := append(Bytes(nil), attr.Value...)
		switch change {
		case ChangeUpdate, ChangeCreation:
			updated[attr.Name] = value
		case ChangeDeletion:
			deleted[attr.Name] = value
		}
	}
	return ProtocolState{
		ComponentID:       msg.ComponentID,
		UpdatedAttributes: updated,
		DeletedAttributes: deleted,
		ModifyTx:          tx.Hash,
	}, nil
}

// ProtocolStatesWithTx groups decoded ProtocolStates by component id for a
// single transaction (spec §3).
type ProtocolStatesWithTx struct {
	ProtocolStates map[ContractId]ProtocolState
	Tx             Transaction
}

// ProtocolStatesWithTxFromMessage decodes every EntityChanges message for a
// single transaction into a ProtocolStatesWithTx.
func ProtocolStatesWithTxFromMessage(msgs []pb.EntityChanges, tx Transaction) (ProtocolStatesWithTx, error) {
	states := make(map[ContractId]ProtocolState, len(msgs))
	for _, m := range msgs {
		state, err := ProtocolStateFromMessage(m, tx)
		if err != nil {
			return ProtocolStatesWithTx{}, err
		}
		states[state.ComponentID] = state
	}
	return ProtocolStatesWithTx{ProtocolStates: states, Tx: tx}, nil
}
