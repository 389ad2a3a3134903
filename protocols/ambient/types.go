package ambient

import (
	"math/big"

	"github.com/synnergy-labs/chainstate-extractor/core"
)

// BalanceDelta is the canonical per-call TVL flow record emitted by the
// dispatcher (spec §3/§4.3).
type BalanceDelta struct {
	PoolHash        [32]byte
	BaseTokenDelta  core.Bytes
	QuoteTokenDelta core.Bytes
	Ordinal         uint64
}

// BlockPoolChanges is the dispatcher's output for a single block (spec §3):
// newly detected protocol components plus ordered balance deltas.
type BlockPoolChanges struct {
	ProtocolComponents []core.ProtocolComponent
	BalanceDeltas      []BalanceDelta
}

// callResult is a decoded call's signed base/quote token flow together with
// the pool it applies to, prior to serialization into a BalanceDelta.
// Positive means inflow to the pool, negative means outflow (GLOSSARY:
// Flow). A nil *callResult from a decoder means the call did not produce a
// flow (e.g. an administrative WarmPath command).
type callResult struct {
	poolHash  [32]byte
	baseFlow  *big.Int
	quoteFlow *big.Int
}
