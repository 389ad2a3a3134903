package ambient

import (
	"math/big"

	"github.com/synnergy-labs/chainstate-extractor/core"
	"github.com/synnergy-labs/chainstate-extractor/pb"
)

var swapArgs = abiTypes(
	"address", "address", "uint256", "bool", "bool",
	"uint128", "uint16", "uint128", "uint128", "uint8",
)

// decodeSwap handles the direct swap entry point shared by the main contract
// and the hot-path proxy: swap(base, quote, poolType, isBuy, inBaseQty, qty,
// tip, limitPrice, minOut, reserveFlags). Flow convention: positive means
// the trader pays the pool that token, negative means the pool pays the
// trader. The "in" leg is the decoded qty; the counter leg is derived from
// the caller-supplied limit price, which is the only price information
// present in the call itself.
func decodeSwap(call pb.Call) (*callResult, error) {
	values, err := unpackTail(swapArgs, call.Input)
	if err != nil {
		return nil, err
	}
	base := mustAddress(values[0])
	quote := mustAddress(values[1])
	poolType := mustUint256(values[2])
	isBuy := mustBool(values[3])
	inBaseQty := mustBool(values[4])
	qty := mustUint256(values[5])
	limitPrice := mustUint256(values[7])

	counter := scalePrice(qty, limitPrice)
	var baseFlow, quoteFlow *big.Int
	if inBaseQty {
		baseFlow, quoteFlow = new(big.Int).Set(qty), new(big.Int).Neg(counter)
	} else {
		quoteFlow, baseFlow = new(big.Int).Set(qty), new(big.Int).Neg(counter)
	}
	if !isBuy {
		baseFlow.Neg(baseFlow)
		quoteFlow.Neg(quoteFlow)
	}

	return &callResult{
		poolHash: PoolHash(base, quote, uint32(poolType.Uint64())),
		baseFlow: baseFlow,
		quoteFlow: quoteFlow,
	}, nil
}

var poolInitArgs = abiTypes("address", "address", "uint256", "uint128")

// decodePoolInit handles the main contract's userCmd(bytes) entry point when
// the leading opcode byte is OpInitPool: userCmd(0x47, base, quote,
// poolType, initialPrice). It does not produce a TVL flow; it produces a
// newly created ProtocolComponent (spec §4.3 pool-init detection).
func decodePoolInit(call pb.Call) (*core.ProtocolComponent, error) {
	if len(call.Input) < 5 {
		return nil, core.NewDecodeError("userCmd input too short for pool init")
	}
	if call.Input[4] != OpInitPool {
		return nil, nil
	}
	values, err := unpackTail(poolInitArgs, append([]byte{0, 0, 0, 0}, call.Input[5:]...))
	if err != nil {
		return nil, err
	}
	base := mustAddress(values[0])
	quote := mustAddress(values[1])
	poolType := mustUint256(values[2])

	hash := PoolHash(base, quote, uint32(poolType.Uint64()))
	return &core.ProtocolComponent{
		ID:             hashHex(hash),
		ProtocolSystem: "ambient",
		ProtocolTypeID: "pool",
		Tokens:         []string{addressHexPublic(base), addressHexPublic(quote)},
		ContractIds:    []core.Address{MainContract},
		StaticAttributes: map[string]core.Bytes{
			"pool_type": core.U256ToBytes(*mustU256(poolType)),
		},
		Change: core.ChangeCreation,
	}, nil
}

// decodeUserCmdFlow handles every other opcode on the main contract's
// userCmd(bytes) entry point. None of the recognized administrative
// opcodes besides OpInitPool produce a TVL flow.
func decodeUserCmdFlow(call pb.Call) (*callResult, error) {
	return nil, nil
}
