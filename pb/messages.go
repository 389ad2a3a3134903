// Package pb mirrors the upstream substreams-style protobuf schema (spec
// §6). These shapes are already-unmarshaled by the out-of-scope transport
// layer before they reach the decoder layer in package core; nothing here
// touches the wire format itself.
package pb

// ChangeType mirrors the upstream enum. Zero value is Unspecified, which the
// decoder layer must reject (spec §3).
type ChangeType int32

const (
	ChangeTypeUnspecified ChangeType = 0
	ChangeTypeUpdate      ChangeType = 1
	ChangeTypeCreation    ChangeType = 2
	ChangeTypeDeletion    ChangeType = 3
)

// Block is the upstream block header message.
type Block struct {
	Number     uint64
	Hash       []byte
	ParentHash []byte
	Ts         uint64 // seconds since epoch
}

// Transaction is the upstream transaction message. To is empty for
// contract-creation transactions.
type Transaction struct {
	Hash  []byte
	From  []byte
	To    []byte
	Index uint64
}

// StorageChange is a single slot mutation within a ContractChange.
type StorageChange struct {
	Slot  []byte
	Value []byte
}

// ContractChange is the upstream per-account VM state delta.
type ContractChange struct {
	Address []byte
	Balance []byte
	Code    []byte
	Slots   []StorageChange
	Change  ChangeType
}

// Attribute is a single named, typed protocol-entity attribute mutation.
type Attribute struct {
	Name   string
	Value  []byte
	Change ChangeType
}

// EntityChanges is the upstream per-component attribute delta.
type EntityChanges struct {
	ComponentID string
	Attributes  []Attribute
}

// BalanceChange is the upstream per-token TVL observation.
type BalanceChange struct {
	Token       []byte
	Balance     []byte // 8 bytes, little-endian f64
	ComponentID []byte // utf-8
}

// ProtocolComponent is the upstream static component description.
type ProtocolComponent struct {
	ID              string
	Tokens          [][]byte // utf-8 token identifiers
	Contracts       [][]byte // 20-byte addresses
	StaticAttribute []Attribute
	Change          ChangeType
	ProtocolSystem  string
	ProtocolTypeID  string
}

// TransactionContractChanges bundles one transaction's VM-contract deltas.
type TransactionContractChanges struct {
	Tx               Transaction
	ContractChanges  []ContractChange
	ComponentChanges []ProtocolComponent
	BalanceChanges   []BalanceChange
}

// TransactionEntityChanges bundles one transaction's protocol-entity deltas.
type TransactionEntityChanges struct {
	Tx               Transaction
	EntityChanges    []EntityChanges
	ComponentChanges []ProtocolComponent
	BalanceChanges   []BalanceChange
}

// BlockContractChanges is the upstream per-block VM-contract payload.
type BlockContractChanges struct {
	Block   *Block
	Changes []TransactionContractChanges
}

// BlockEntityChanges is the upstream per-block protocol-entity payload.
type BlockEntityChanges struct {
	Block   *Block
	Changes []TransactionEntityChanges
}

// Call is a single node in a transaction's call tree, as produced by the
// upstream trace collector.
type Call struct {
	Address        []byte
	Input          []byte
	StorageChanges []CallStorageChange
	StateReverted  bool
	Index          uint64 // block-wide ordinal
}

// CallStorageChange is a storage slot mutation observed within a call.
type CallStorageChange struct {
	Address []byte
	Slot    []byte
	Value   []byte
	Ordinal uint64
}

// TraceTransaction is a transaction together with its call tree, used by the
// protocol-call dispatcher (C3).
type TraceTransaction struct {
	Hash  []byte
	Index uint64
	Calls []Call
}

// TraceBlock is the upstream payload the protocol-call dispatcher consumes.
type TraceBlock struct {
	Number       uint64
	Hash         []byte
	Transactions []TraceTransaction
}
