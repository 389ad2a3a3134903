package core

import "github.com/synnergy-labs/chainstate-extractor/pb"

// Transaction is a decoded upstream transaction (spec §3). To is absent for
// contract-creation transactions, which upstream encodes as an empty `to`.
type Transaction struct {
	Hash      Hash256
	BlockHash Hash256
	From      Address
	To        *Address
	Index     uint64
}

// TransactionFromMessage decodes an upstream pb.Transaction into a
// Transaction, attaching the enclosing block's hash.
func TransactionFromMessage(msg pb.Transaction, blockHash Hash256) (Transaction, error) {
	hash, err := ParseHash256(msg.Hash)
	if err != nil {
		return Transaction{}, NewDecodeError("transaction.hash: " + err.Error())
	}
	from, err := ParseAddress(msg.From)
	if err != nil {
		return Transaction{}, NewDecodeError("transaction.from: " + err.Error())
	}
	var to *Address
	if len(msg.To) > 0 {
		addr, err := ParseAddress(msg.To)
		if err != nil {
			return Transaction{}, NewDecodeError("transaction.to: " + err.Error())
		}
		to = &addr
	}
	return Transaction{
		Hash:      hash,
		BlockHash: blockHash,
		From:      from,
		To:        to,
		Index:     msg.Index,
	}, nil
}
