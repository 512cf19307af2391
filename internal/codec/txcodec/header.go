package txcodec

import (
	"errors"
	"fmt"
)

// ErrInvalidTxBlob is returned when a blob's length does not match the
// fixed contract for its declared tx_type, or the tx_type is unrecognized.
var ErrInvalidTxBlob = errors.New("txcodec: invalid transaction blob")

// Header is the common prefix shared by every transaction variant.
type Header struct {
	Type     TxType
	Account  [20]byte
	Fee      uint64
	Sequence uint32
}

// DecodeHeader validates blob length against the declared type's fixed
// contract and decodes the common header. Callers decode type-specific
// trailing fields starting at HeaderLen.
func DecodeHeader(blob []byte) (Header, error) {
	if len(blob) < HeaderLen {
		return Header{}, fmt.Errorf("%w: blob shorter than header (%d bytes)", ErrInvalidTxBlob, len(blob))
	}

	rawType, err := ReadUint16(blob, 0)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrInvalidTxBlob, err)
	}
	txType := TxType(rawType)

	expected, ok := ExpectedLength(txType)
	if !ok {
		return Header{}, fmt.Errorf("%w: unknown tx_type %d", ErrInvalidTxBlob, rawType)
	}
	if len(blob) != expected {
		return Header{}, fmt.Errorf("%w: type %s expects %d bytes, got %d", ErrInvalidTxBlob, txType, expected, len(blob))
	}

	accountBytes, err := ReadFixed(blob, 2, 20)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrInvalidTxBlob, err)
	}
	fee, err := ReadUint64(blob, 22)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrInvalidTxBlob, err)
	}
	seq, err := ReadUint32(blob, 30)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrInvalidTxBlob, err)
	}

	var h Header
	h.Type = txType
	copy(h.Account[:], accountBytes)
	h.Fee = fee
	h.Sequence = seq
	return h, nil
}

// EncodeHeader writes the common header fields in canonical order.
func EncodeHeader(h Header) []byte {
	buf := make([]byte, 0, HeaderLen)
	buf = PutUint16(buf, uint16(h.Type))
	buf = PutFixed(buf, h.Account[:], 20)
	buf = PutUint64(buf, h.Fee)
	buf = PutUint32(buf, h.Sequence)
	return buf
}
