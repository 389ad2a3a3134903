package main

import (
	"fmt"

	"github.com/synnergy-labs/chainstate-extractor/core"
)

func parseChain(name string) (core.Chain, error) {
	switch name {
	case "ethereum":
		return core.ChainEthereum, nil
	case "starknet":
		return core.ChainStarknet, nil
	case "zksync":
		return core.ChainZkSync, nil
	default:
		return 0, fmt.Errorf("unknown chain %q", name)
	}
}
