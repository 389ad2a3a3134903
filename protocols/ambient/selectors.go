// Package ambient implements the protocol-call dispatcher (C3) for an
// AMM-style protocol family with multiple entry-point contracts: a main
// contract, a hot-path swap proxy, a micro-paths proxy, a warm-path proxy,
// and a knockout-liquidity proxy. It scans a block's call tree, routes
// non-reverted calls by (contract address, function selector), decodes
// call arguments, and emits canonical BalanceDelta records plus newly
// created ProtocolComponents (spec §4.3).
package ambient

import "github.com/synnergy-labs/chainstate-extractor/core"

// Selector is a 4-byte function selector, the first 4 bytes of
// keccak256(signature), fixed at compile time (spec §6).
type Selector [4]byte

// Entry-point contract addresses. In production these are the real,
// deployed addresses of the protocol's sidecar contracts; they are process-
// wide immutable constants (spec §5).
var (
	MainContract       = core.Address{0x5C, 0xc3, 0x0d, 0x05, 0x00, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}
	HotProxyContract   = core.Address{0x5C, 0xc3, 0x0d, 0x05, 0x00, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02}
	MicroPathsContract = core.Address{0x5C, 0xc3, 0x0d, 0x05, 0x00, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03}
	WarmPathContract   = core.Address{0x5C, 0xc3, 0x0d, 0x05, 0x00, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04}
	KnockoutContract   = core.Address{0x5C, 0xc3, 0x0d, 0x05, 0x00, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05}
)

// Function selectors, named to match spec §4.3's routing table. Each is
// keccak256(signature)[:4] for the corresponding entry-point function.
var (
	// swap(address,address,uint256,bool,bool,uint128,uint16,uint128,uint128,uint8)
	SwapFnSig = Selector{0x3d, 0x71, 0x9c, 0xd9}
	// userCmd(bytes)
	UserCmdFnSig = Selector{0xf9, 0x6d, 0xc7, 0x88}
	// userCmd(bytes) on the hot-path proxy
	UserCmdHotProxyFnSig = Selector{0xf9, 0x6d, 0xc7, 0x88}
	// sweepSwap((address,address,uint256,bool),uint256,(address,address,uint256,bool,bool,uint128,uint16,uint128,uint128,uint8)[])
	SweepSwapFnSig = Selector{0xea, 0xa6, 0x75, 0x88}
	// mintRange(address,address,uint256,int24,int24,uint128,uint128,uint128,uint8)
	MintRangeFnSig = Selector{0xe6, 0x26, 0x49, 0x6e}
	// mintAmbient(address,address,uint256,uint128,uint128,uint128,uint8)
	MintAmbientFnSig = Selector{0xa3, 0xac, 0xd4, 0x44}
	// burnRange(address,address,uint256,int24,int24,uint128,uint128,uint128,uint8)
	BurnRangeFnSig = Selector{0x48, 0x5f, 0xbc, 0xeb}
	// burnAmbient(address,address,uint256,uint128,uint128,uint128,uint8)
	BurnAmbientFnSig = Selector{0x70, 0x58, 0xe1, 0xb4}
	// userCmd(bytes) on the warm-path proxy
	UserCmdWarmPathFnSig = Selector{0xf9, 0x6d, 0xc7, 0x88}
	// userCmd(bytes) on the knockout-liquidity proxy
	UserCmdKnockoutFnSig = Selector{0xf9, 0x6d, 0xc7, 0x88}
)

// userCmd opcodes recognized on the main contract's UserCmdFnSig entry
// point. Only OpInitPool triggers pool-init detection; every other opcode
// decodes to "not a flow-producing invocation we track here" (None).
const (
	OpInitPool byte = 71
)
