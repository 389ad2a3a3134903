// aggregate.go implements C6: orchestration of C2–C5 into the two parallel
// extraction modes (BlockContractChanges / BlockEntityChanges) and their
// final aggregated results.
package core

import (
	"fmt"
	"sort"

	"github.com/synnergy-labs/chainstate-extractor/pb"
)

// NormalizedMessage is the common capability both final aggregated result
// types implement: reporting the (chain, extractor_name) pair the delivery
// layer uses for routing (spec §4.6/§9). It exists for documentation and
// compile-time capability checking; the core never stores values behind
// this interface, since a given extractor only ever emits one concrete
// result type.
type NormalizedMessage interface {
	Source() (Chain, string)
}

// BlockContractChanges holds one block's worth of decoded, not-yet-merged
// VM-contract updates, plus the protocol components carried in the upstream
// message. BlockContractChangesFromMessage leaves TvlChanges empty;
// AggregateUpdates carries it through unchanged.
type BlockContractChanges struct {
	Extractor             string
	Chain                 Chain
	Block                 Block
	TxUpdates             []AccountUpdateWithTx
	NewProtocolComponents []ProtocolComponent
	TvlChanges            []TvlChange
}

// BlockContractChangesFromMessage decodes an upstream pb.BlockContractChanges
// payload (C2). tx_updates are returned sorted ascending by tx.index, which
// AggregateUpdates requires as a precondition.
func BlockContractChangesFromMessage(msg *pb.BlockContractChanges, chain Chain, extractor string) (BlockContractChanges, error) {
	if msg == nil || msg.Block == nil {
		return BlockContractChanges{}, ErrEmpty
	}
	block, err := BlockFromMessage(msg.Block, chain)
	if err != nil {
		return BlockContractChanges{}, err
	}

	var txUpdates []AccountUpdateWithTx
	var components []ProtocolComponent
	for _, txChanges := range msg.Changes {
		tx, err := TransactionFromMessage(txChanges.Tx, block.Hash)
		if err != nil {
			return BlockContractChanges{}, err
		}
		for _, cc := range txChanges.ContractChanges {
			upd, err := AccountUpdateFromMessage(cc, tx, chain)
			if err != nil {
				return BlockContractChanges{}, err
			}
			txUpdates = append(txUpdates, upd)
		}
		for _, pc := range txChanges.ComponentChanges {
			component, err := ProtocolComponentFromMessage(pc, chain)
			if err != nil {
				return BlockContractChanges{}, err
			}
			components = append(components, component)
		}
	}

	sort.SliceStable(txUpdates, func(i, j int) bool {
		return txUpdates[i].Tx.Index < txUpdates[j].Tx.Index
	})

	return BlockContractChanges{
		Extractor:             extractor,
		Chain:                 chain,
		Block:                 block,
		TxUpdates:             txUpdates,
		NewProtocolComponents: components,
	}, nil
}

// BlockAccountChanges is the final, per-block, per-address aggregated
// result (spec §3/§4.6).
type BlockAccountChanges struct {
	Extractor                   string
	Chain                       Chain
	Block                       Block
	AccountUpdates              map[Address]AccountUpdate
	NewProtocolComponents       []ProtocolComponent
	DeletedProtocolComponentIds []ContractId
	TvlChanges                  []TvlChange
}

// Source reports the (chain, extractor_name) pair for downstream routing.
func (r BlockAccountChanges) Source() (Chain, string) { return r.Chain, r.Extractor }

// AggregateUpdates folds b.TxUpdates (precondition: already sorted ascending
// by tx.index) via the C4 merge engine into one entry per address.
func (b BlockContractChanges) AggregateUpdates() (BlockAccountChanges, error) {
	merged, err := MergeAccountUpdates(b.TxUpdates)
	if err != nil {
		return BlockAccountChanges{}, fmt.Errorf("aggregating contract changes: %w", err)
	}
	return BlockAccountChanges{
		Extractor:                   b.Extractor,
		Chain:                       b.Chain,
		Block:                       b.Block,
		AccountUpdates:              merged,
		NewProtocolComponents:       b.NewProtocolComponents,
		DeletedProtocolComponentIds: nil,
		TvlChanges:                  b.TvlChanges,
	}, nil
}

// BlockEntityChanges holds one block's worth of decoded, not-yet-merged
// protocol-entity attribute deltas.
type BlockEntityChanges struct {
	Extractor             string
	Chain                 Chain
	Block                 Block
	StateUpdates          []ProtocolStatesWithTx
	NewProtocolComponents []ProtocolComponent
}

// BlockEntityChangesFromMessage decodes an upstream pb.BlockEntityChanges
// payload (C2).
func BlockEntityChangesFromMessage(msg *pb.BlockEntityChanges, chain Chain, extractor string) (BlockEntityChanges, error) {
	if msg == nil || msg.Block == nil {
		return BlockEntityChanges{}, ErrEmpty
	}
	block, err := BlockFromMessage(msg.Block, chain)
	if err != nil {
		return BlockEntityChanges{}, err
	}

	var stateUpdates []ProtocolStatesWithTx
	var components []ProtocolComponent
	for _, txChanges := range msg.Changes {
		tx, err := TransactionFromMessage(txChanges.Tx, block.Hash)
		if err != nil {
			return BlockEntityChanges{}, err
		}
		states, err := ProtocolStatesWithTxFromMessage(txChanges.EntityChanges, tx)
		if err != nil {
			return BlockEntityChanges{}, err
		}
		stateUpdates = append(stateUpdates, states)
		for _, pc := range txChanges.ComponentChanges {
			component, err := ProtocolComponentFromMessage(pc, chain)
			if err != nil {
				return BlockEntityChanges{}, err
			}
			components = append(components, component)
		}
	}

	sort.SliceStable(stateUpdates, func(i, j int) bool {
		return stateUpdates[i].Tx.Index < stateUpdates[j].Tx.Index
	})

	return BlockEntityChanges{
		Extractor:             extractor,
		Chain:                 chain,
		Block:                 block,
		StateUpdates:          stateUpdates,
		NewProtocolComponents: components,
	}, nil
}

// BlockEntityChangesResult is the final, per-block, per-component
// aggregated result (spec §3/§4.6).
type BlockEntityChangesResult struct {
	Extractor             string
	Chain                 Chain
	Block                 Block
	StateUpdates          map[ContractId]ProtocolState
	NewProtocolComponents []ProtocolComponent
}

// Source reports the (chain, extractor_name) pair for downstream routing.
func (r BlockEntityChangesResult) Source() (Chain, string) { return r.Chain, r.Extractor }

// AggregateUpdates folds b.StateUpdates (precondition: already sorted
// ascending by tx.index) via the C5 merge engine into one
// ProtocolStatesWithTx, whose protocol_states mapping becomes the result's
// state_updates. NewProtocolComponents carries through unchanged.
func (b BlockEntityChanges) AggregateUpdates() (BlockEntityChangesResult, error) {
	merged, err := MergeProtocolStates(b.StateUpdates)
	if err != nil {
		return BlockEntityChangesResult{}, fmt.Errorf("aggregating entity changes: %w", err)
	}
	return BlockEntityChangesResult{
		Extractor:             b.Extractor,
		Chain:                 b.Chain,
		Block:                 b.Block,
		StateUpdates:          merged.ProtocolStates,
		NewProtocolComponents: b.NewProtocolComponents,
	}, nil
}
