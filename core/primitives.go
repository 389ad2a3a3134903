// primitives.go implements C1: parsing of fixed/variable-width upstream byte
// fields into domain scalars, with left-padding rules, and the two
// byte-serialization helpers (keccak256, signed-256 LE encoding) the rest of
// the decoder/dispatcher layers build on.
package core

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

// ParseAddress left-pads b with zeros up to 20 bytes and returns the
// resulting Address. It fails if b is longer than 20 bytes.
func ParseAddress(b []byte) (Address, error) {
	if len(b) > 20 {
		return Address{}, NewDecodeError("address exceeds 20 bytes")
	}
	var out Address
	copy(out[20-len(b):], b)
	return out, nil
}

// ParseHash256 left-pads b with zeros up to 32 bytes and returns the
// resulting Hash256. It fails if b is longer than 32 bytes.
func ParseHash256(b []byte) (Hash256, error) {
	if len(b) > 32 {
		return Hash256{}, NewDecodeError("hash exceeds 32 bytes")
	}
	var out Hash256
	copy(out[32-len(b):], b)
	return out, nil
}

// ParseU256BE interprets b as a big-endian, left-padded (up to 32 bytes)
// unsigned integer.
func ParseU256BE(b []byte) (U256, error) {
	if len(b) > 32 {
		return U256{}, NewDecodeError("u256 exceeds 32 bytes")
	}
	var out U256
	out.SetBytes(b)
	return out, nil
}

// U256ToBytes returns the canonical big-endian, 32-byte-padded serialization
// of value. Used for the round-trip property (spec §8 invariant 5).
func U256ToBytes(value U256) Bytes {
	return math.PaddedBigBytes(value.ToBig(), 32)
}

// U256ToSignedBytes returns the canonical little-endian, 32-byte
// two's-complement serialization of a signed flow (spec §4.3/§6/§9). flow
// may be negative; negative values are wrapped into [0, 2^256) the same way
// go-ethereum's common/math package represents signed EVM words.
func U256ToSignedBytes(flow *big.Int) Bytes {
	wrapped := math.U256(new(big.Int).Set(flow))
	be := math.PaddedBigBytes(wrapped, 32)
	// canonical serialization is little-endian per spec §6.
	le := make([]byte, 32)
	for i := 0; i < 32; i++ {
		le[i] = be[31-i]
	}
	return le
}

// SignedBytesToU256 is the inverse of U256ToSignedBytes: it interprets 32
// little-endian bytes as a two's-complement signed integer.
func SignedBytesToU256(le Bytes) *big.Int {
	be := make([]byte, len(le))
	for i := range le {
		be[len(le)-1-i] = le[i]
	}
	return math.S256(new(big.Int).SetBytes(be))
}

// Keccak256 is the cryptographic hash used for code_hash derivation and
// pool-hash fingerprinting.
func Keccak256(data ...Bytes) Hash256 {
	return crypto.Keccak256Hash(data...)
}
