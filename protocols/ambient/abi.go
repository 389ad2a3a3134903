package ambient

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/synnergy-labs/chainstate-extractor/core"
)

// abiTypes builds an abi.Arguments from the given Solidity type names, in
// the order they should be unpacked. Panics on a malformed type name, since
// the type names here are compile-time constants describing this package's
// own fixed ABI shapes (mirrors how generated go-ethereum bindings build
// their method Arguments once at package init).
func abiTypes(types ...string) abi.Arguments {
	args := make(abi.Arguments, 0, len(types))
	for _, t := range types {
		typ, err := abi.NewType(t, "", nil)
		if err != nil {
			panic("ambient: invalid abi type " + t + ": " + err.Error())
		}
		args = append(args, abi.Argument{Type: typ})
	}
	return args
}

// unpackTail ABI-decodes everything in input after the 4-byte selector.
func unpackTail(args abi.Arguments, input []byte) ([]interface{}, error) {
	if len(input) < 4 {
		return nil, core.NewDecodeError("call input shorter than a selector")
	}
	values, err := args.Unpack(input[4:])
	if err != nil {
		return nil, core.NewDecodeError("unpack call args: " + err.Error())
	}
	return values, nil
}

func mustAddress(v interface{}) core.Address { return v.(core.Address) }
func mustBool(v interface{}) bool            { return v.(bool) }
func mustUint8(v interface{}) uint8          { return v.(uint8) }
func mustUint16(v interface{}) uint16        { return v.(uint16) }
func mustUint256(v interface{}) *big.Int     { return v.(*big.Int) }
func mustBytes(v interface{}) []byte         { return v.([]byte) }

// scalePrice applies a Q64.64 fixed-point price to an amount, used to
// derive the counter-leg flow of a swap-family call from its decoded
// quantity and limit price.
func scalePrice(amount, priceX64 *big.Int) *big.Int {
	out := new(big.Int).Mul(amount, priceX64)
	return out.Rsh(out, 64)
}
