package ambient

import (
	"math/big"

	"github.com/synnergy-labs/chainstate-extractor/core"
)

// hashHex renders a pool hash as a 0x-prefixed lowercase hex string, used as
// the ProtocolComponent identity for newly detected pools.
func hashHex(h [32]byte) string {
	return core.Hash256(h).Hex()
}

func addressHexPublic(a core.Address) string {
	return a.Hex()
}

// mustU256 converts a non-negative *big.Int decoded from call arguments into
// a core.U256. Callers only pass values already range-checked by the ABI
// decoder (uint128/uint256 arguments), so this never overflows.
func mustU256(v *big.Int) *core.U256 {
	var out core.U256
	out.SetFromBig(v)
	return &out
}

func zero() *big.Int { return new(big.Int) }
