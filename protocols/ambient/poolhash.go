package ambient

import "github.com/synnergy-labs/chainstate-extractor/core"

// PoolHash derives the 32-byte canonical fingerprint for a pool instance:
// keccak256(base_token ∥ quote_token ∥ pool_type) (GLOSSARY: Pool hash).
// Multiple decoders (swap, mint, burn, knockout) need the identical
// derivation, so it is exposed as a named function rather than inlined in
// each one.
func PoolHash(base, quote core.Address, poolType uint32) [32]byte {
	var poolTypeBytes [4]byte
	poolTypeBytes[0] = byte(poolType >> 24)
	poolTypeBytes[1] = byte(poolType >> 16)
	poolTypeBytes[2] = byte(poolType >> 8)
	poolTypeBytes[3] = byte(poolType)
	return core.Keccak256(base.Bytes(), quote.Bytes(), poolTypeBytes[:])
}
