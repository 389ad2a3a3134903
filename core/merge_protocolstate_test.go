package core

import "testing"

// S4 — conflict resolution: an attribute deleted by the later update must be
// removed from the accumulated updated set, and vice versa, leaving the two
// key-sets disjoint.
func TestProtocolStateMerge_ConflictResolution(t *testing.T) {
	state1 := ProtocolState{
		ComponentID: "pool-1",
		UpdatedAttributes: map[string]Bytes{
			"reserve1":      {0x03, 0xe8}, // 1000
			"reserve2":      {0x01, 0xf4}, // 500
			"static":        {0x01},
			"to_be_removed": {0x01},
		},
		DeletedAttributes: map[string]Bytes{
			"to_add_back": {},
		},
	}
	state2 := ProtocolState{
		ComponentID: "pool-1",
		UpdatedAttributes: map[string]Bytes{
			"reserve1":    {0x03, 0x84}, // 900
			"reserve2":    {0x02, 0x26}, // 550
			"new":         {0x01},
			"to_add_back": {0x00, 0xc8}, // 200
		},
		DeletedAttributes: map[string]Bytes{
			"to_be_removed": {},
		},
	}

	if err := state1.Merge(state2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantUpdated := []string{"reserve1", "reserve2", "static", "new", "to_add_back"}
	for _, k := range wantUpdated {
		if _, ok := state1.UpdatedAttributes[k]; !ok {
			t.Errorf("expected %q in updated attributes", k)
		}
	}
	if _, ok := state1.UpdatedAttributes["to_be_removed"]; ok {
		t.Error("to_be_removed must not remain in updated attributes")
	}
	if len(state1.DeletedAttributes) != 1 {
		t.Fatalf("expected exactly one deleted attribute, got %d", len(state1.DeletedAttributes))
	}
	if _, ok := state1.DeletedAttributes["to_be_removed"]; !ok {
		t.Error("expected to_be_removed in deleted attributes")
	}
	for k := range state1.UpdatedAttributes {
		if _, ok := state1.DeletedAttributes[k]; ok {
			t.Errorf("updated and deleted sets overlap on key %q", k)
		}
	}
}

func TestProtocolStatesWithTxMerge_RejectsSameTx(t *testing.T) {
	blockHash := hash(0x01)
	tx := Transaction{Hash: hash(0xA0), BlockHash: blockHash, Index: 1}
	first := ProtocolStatesWithTx{ProtocolStates: map[ContractId]ProtocolState{}, Tx: tx}
	second := ProtocolStatesWithTx{ProtocolStates: map[ContractId]ProtocolState{}, Tx: tx}

	if err := first.Merge(second); err == nil {
		t.Fatal("expected a merge error for identical transactions")
	}
}

func TestMergeProtocolStates_Empty(t *testing.T) {
	result, err := MergeProtocolStates(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ProtocolStates == nil || len(result.ProtocolStates) != 0 {
		t.Fatalf("expected an empty, non-nil ProtocolStates map, got %v", result.ProtocolStates)
	}
}
