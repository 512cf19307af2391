package ledger

// CloseFlags is a bitset of flags describing how a ledger closed.
type CloseFlags uint32

// Header is an immutable, sealed ledger header (spec §3). Ledgers are
// never mutated after creation: they are produced once by Close and
// thereafter only read.
type Header struct {
	Sequence            LedgerSeq
	ParentHash           Hash256
	CloseTime            uint32 // seconds since the Ripple epoch (2000-01-01)
	ParentCloseTime      uint32
	CloseTimeResolution  uint32
	CloseFlags           CloseFlags
	TotalCoins           Drops
	AccountStateHash     Hash256
	TransactionHash      Hash256
	Hash                 Hash256
}

// ComputeHash computes hash = H(sequence‖parent_hash‖close_time‖
// account_state_hash‖transaction_hash), where H is sha512_half.
func (h Header) ComputeHash() Hash256 {
	buf := make([]byte, 0, 4+32+4+32+32)
	buf = appendUint32(buf, uint32(h.Sequence))
	buf = append(buf, h.ParentHash[:]...)
	buf = appendUint32(buf, h.CloseTime)
	buf = append(buf, h.AccountStateHash[:]...)
	buf = append(buf, h.TransactionHash[:]...)
	return Sha512Half(buf)
}

// ComputeTransactionHash folds applied-transaction hashes, in the order
// they were applied (canonical order, spec §4.D), through sha512_half.
func ComputeTransactionHash(txHashes []Hash256) Hash256 {
	if len(txHashes) == 0 {
		return Hash256{}
	}
	var buf []byte
	for _, h := range txHashes {
		buf = append(buf, h[:]...)
	}
	return Sha512Half(buf)
}
