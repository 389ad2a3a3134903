package core

import (
	"github.com/synnergy-labs/chainstate-extractor/pb"
)

// ContractId identifies a protocol component's backing contract(s). It may
// be an on-chain address or a synthetic multi-contract key such as
// "USDC-ETH" (spec §3).
type ContractId = string

// ProtocolComponent is the static description of a tradable unit such as a
// liquidity pool (spec §3).
type ProtocolComponent struct {
	ID               ContractId
	ProtocolSystem   string
	ProtocolTypeID   string
	Chain            Chain
	Tokens           []string
	ContractIds      []Address
	StaticAttributes map[string]Bytes
	Change           ChangeType
}

// ProtocolComponentFromMessage decodes an upstream pb.ProtocolComponent.
func ProtocolComponentFromMessage(msg pb.ProtocolComponent, chain Chain) (ProtocolComponent, error) {
	change, err := ParseChangeType(int32(msg.Change))
	if err != nil {
		return ProtocolComponent{}, err
	}
	tokens := make([]string, len(msg.Tokens))
	for i, t := range msg.Tokens {
		tokens[i] = string(t)
	}
	contracts := make([]Address, len(msg.Contracts))
	for i, c := range msg.Contracts {
		addr, err := ParseAddress(c)
		if err != nil {
			return ProtocolComponent{}, NewDecodeError("protocol_component.contracts: " + err.Error())
		}
		contracts[i] = addr
	}
	attrs := make(map[string]Bytes, len(msg.StaticAttribute))
	for _, a := range msg.StaticAttribute {
		attrs[a.Name] = append(Bytes(nil), a.Value...)
	}
	return ProtocolComponent{
		ID:               msg.ID,
		ProtocolSystem:   msg.ProtocolSystem,
		ProtocolTypeID:   msg.ProtocolTypeID,
		Chain:            chain,
		Tokens:           tokens,
		ContractIds:      contracts,
		StaticAttributes: attrs,
		Change:           change,
	}, nil
}
