package core

import (
	log "github.com/sirupsen/logrus"

	"github.com/synnergy-labs/chainstate-extractor/pb"
)

// Account is the full, materialized on-chain account entity (spec §3).
// code_hash must equal keccak256(code) whenever a code change is applied;
// title defaults to the lowercase hex of the address.
type Account struct {
	Chain           Chain
	Address         Address
	Title           string
	Slots           map[U256]U256
	NativeBalance   U256
	Code            Bytes
	CodeHash        Hash256
	BalanceModifyTx Hash256
	CodeModifyTx    Hash256
	CreationTx      *Hash256
}

// AccountUpdate is a per-block condensed account delta (spec §3).
type AccountUpdate struct {
	Address Address
	Chain   Chain
	Slots   map[U256]U256
	Balance *U256
	Code    Bytes
	HasCode bool
	Change  ChangeType
}

// AccountUpdateWithTx wraps an AccountUpdate with its originating
// transaction (spec §3).
type AccountUpdateWithTx struct {
	Update AccountUpdate
	Tx     Transaction
}

// AccountUpdateFromMessage decodes an upstream pb.ContractChange into an
// AccountUpdateWithTx, attaching the pre-decoded transaction.
func AccountUpdateFromMessage(msg pb.ContractChange, tx Transaction, chain Chain) (AccountUpdateWithTx, error) {
	addr, err := ParseAddress(msg.Address)
	if err != nil {
		return AccountUpdateWithTx{}, NewDecodeError("contract_change.address: " + err.Error())
	}
	change, err := ParseChangeType(int32(msg.Change))
	if err != nil {
		return AccountUpdateWithTx{}, err
	}

	slots := make(map[U256]U256, len(msg.Slots))
	for _, s := range msg.Slots {
		slot, err := ParseU256BE(s.Slot)
		if err != nil {
			return AccountUpdateWithTx{}, NewDecodeError("contract_change.slot: " + err.Error())
		}
		val, err := ParseU256BE(s.Value)
		if err != nil {
			return AccountUpdateWithTx{}, NewDecodeError("contract_change.slot_value: " + err.Error())
		}
		slots[slot] = val
	}

	var balance *U256
	if len(msg.Balance) > 0 {
		b, err := ParseU256BE(msg.Balance)
		if err != nil {
			return AccountUpdateWithTx{}, NewDecodeError("contract_change.balance: " + err.Error())
		}
		balance = &b
	}

	var code Bytes
	hasCode := len(msg.Code) > 0
	if hasCode {
		code = append(Bytes(nil), msg.Code...)
	}

	return AccountUpdateWithTx{
		Update: AccountUpdate{
			Address: addr,
			Chain:   chain,
			Slots:   slots,
			Balance: balance,
			Code:    code,
			HasCode: hasCode,
			Change:  change,
		},
		Tx: tx,
	}, nil
}

// NewAccountFromUpdate constructs a full Account from an AccountUpdateWithTx.
// This should only be called when upd.Update.Change == ChangeCreation; if
// it is not, a warning is logged and proceeds anyway (spec §7/§9) — the
// core never promotes this to an error.
func NewAccountFromUpdate(upd AccountUpdateWithTx) Account {
	if upd.Update.Change != ChangeCreation {
		log.Warn("core: creating an account from a partial (non-creation) change")
	}
	var balance U256
	if upd.Update.Balance != nil {
		balance = *upd.Update.Balance
	}
	code := upd.Update.Code
	codeHash := Keccak256(code)
	txHash := upd.Tx.Hash
	return Account{
		Chain:           upd.Update.Chain,
		Address:         upd.Update.Address,
		Title:           addressHex(upd.Update.Address),
		Slots:           upd.Update.Slots,
		NativeBalance:   balance,
		Code:            code,
		CodeHash:        codeHash,
		BalanceModifyTx: txHash,
		CodeModifyTx:    txHash,
		CreationTx:      &txHash,
	}
}
