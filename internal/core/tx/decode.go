package tx

import (
	"fmt"

	"github.com/goxrpld/lab/internal/codec/txcodec"
	"github.com/goxrpld/lab/internal/core/ledger"
)

// Decode parses a fixed-length transaction blob into a Transaction,
// dispatching on tx_type. Blobs of the wrong length for their declared
// type fail with txcodec.ErrInvalidTxBlob (spec §4.A, §4.D).
func Decode(blob []byte) (*Transaction, error) {
	h, err := txcodec.DecodeHeader(blob)
	if err != nil {
		return nil, err
	}

	out := &Transaction{
		Type:     h.Type,
		Account:  ledger.AccountID(h.Account),
		Fee:      ledger.Drops(h.Fee),
		Sequence: h.Sequence,
	}

	const off = txcodec.HeaderLen
	switch h.Type {
	case txcodec.TxPayment:
		dest, _ := txcodec.ReadFixed(blob, off, 20)
		amount, err := txcodec.ReadUint64(blob, off+20)
		if err != nil {
			return nil, fmt.Errorf("%w: payment amount: %v", txcodec.ErrInvalidTxBlob, err)
		}
		out.Payment = &PaymentFields{
			Destination: ledger.AccountID(fixed20(dest)),
			Amount:      ledger.Drops(amount),
		}

	case txcodec.TxAccountSet:
		out.AccountSet = &AccountSetFields{}

	case txcodec.TxTrustSet:
		currency, _ := txcodec.ReadFixed(blob, off, 20)
		issuer, _ := txcodec.ReadFixed(blob, off+20, 20)
		mantissa, err := txcodec.ReadUint64(blob, off+40)
		if err != nil {
			return nil, fmt.Errorf("%w: trust set mantissa: %v", txcodec.ErrInvalidTxBlob, err)
		}
		expByte, err := txcodec.ReadFixed(blob, off+48, 1)
		if err != nil {
			return nil, fmt.Errorf("%w: trust set exponent: %v", txcodec.ErrInvalidTxBlob, err)
		}
		out.TrustSet = &TrustSetFields{
			LimitCurrency: fixed20(currency),
			LimitIssuer:   ledger.AccountID(fixed20(issuer)),
			LimitMantissa: mantissa,
			LimitExponent: int8(expByte[0]),
		}

	case txcodec.TxOfferCreate:
		pays, err := txcodec.ReadUint64(blob, off)
		if err != nil {
			return nil, fmt.Errorf("%w: taker_pays: %v", txcodec.ErrInvalidTxBlob, err)
		}
		gets, err := txcodec.ReadUint64(blob, off+8)
		if err != nil {
			return nil, fmt.Errorf("%w: taker_gets: %v", txcodec.ErrInvalidTxBlob, err)
		}
		out.OfferCreate = &OfferCreateFields{TakerPays: pays, TakerGets: gets}

	case txcodec.TxOfferCancel:
		seq, err := txcodec.ReadUint32(blob, off)
		if err != nil {
			return nil, fmt.Errorf("%w: offer_sequence: %v", txcodec.ErrInvalidTxBlob, err)
		}
		out.OfferCancel = &OfferCancelFields{OfferSequence: seq}

	case txcodec.TxEscrowCreate:
		amount, err := txcodec.ReadUint64(blob, off)
		if err != nil {
			return nil, fmt.Errorf("%w: escrow amount: %v", txcodec.ErrInvalidTxBlob, err)
		}
		cancelAfter, err := txcodec.ReadUint32(blob, off+8)
		if err != nil {
			return nil, fmt.Errorf("%w: cancel_after: %v", txcodec.ErrInvalidTxBlob, err)
		}
		out.EscrowCreate = &EscrowCreateFields{Amount: amount, CancelAfter: cancelAfter}

	case txcodec.TxCheckCreate:
		dest, _ := txcodec.ReadFixed(blob, off, 20)
		sendMax, err := txcodec.ReadUint64(blob, off+20)
		if err != nil {
			return nil, fmt.Errorf("%w: send_max: %v", txcodec.ErrInvalidTxBlob, err)
		}
		out.CheckCreate = &CheckCreateFields{Destination: ledger.AccountID(fixed20(dest)), SendMax: sendMax}

	case txcodec.TxPaymentChannelCreate:
		dest, _ := txcodec.ReadFixed(blob, off, 20)
		amount, err := txcodec.ReadUint64(blob, off+20)
		if err != nil {
			return nil, fmt.Errorf("%w: channel amount: %v", txcodec.ErrInvalidTxBlob, err)
		}
		settleDelay, err := txcodec.ReadUint32(blob, off+28)
		if err != nil {
			return nil, fmt.Errorf("%w: settle_delay: %v", txcodec.ErrInvalidTxBlob, err)
		}
		out.PaymentChannelCreate = &PaymentChannelCreateFields{
			Destination: ledger.AccountID(fixed20(dest)),
			Amount:      amount,
			SettleDelay: settleDelay,
		}

	default:
		return nil, fmt.Errorf("%w: unsupported tx_type %d", txcodec.ErrInvalidTxBlob, h.Type)
	}

	return out, nil
}

// Encode serializes a Transaction back into its canonical fixed-length
// blob. Encode(Decode(b)) == b for every supported type (spec §8).
func Encode(t *Transaction) []byte {
	h := txcodec.Header{
		Type:     t.Type,
		Account:  [20]byte(t.Account),
		Fee:      uint64(t.Fee),
		Sequence: t.Sequence,
	}
	buf := txcodec.EncodeHeader(h)

	switch t.Type {
	case txcodec.TxPayment:
		buf = txcodec.PutFixed(buf, t.Payment.Destination[:], 20)
		buf = txcodec.PutUint64(buf, uint64(t.Payment.Amount))
	case txcodec.TxAccountSet:
		// no trailing fields
	case txcodec.TxTrustSet:
		buf = txcodec.PutFixed(buf, t.TrustSet.LimitCurrency[:], 20)
		buf = txcodec.PutFixed(buf, t.TrustSet.LimitIssuer[:], 20)
		buf = txcodec.PutUint64(buf, t.TrustSet.LimitMantissa)
		buf = append(buf, byte(t.TrustSet.LimitExponent))
	case txcodec.TxOfferCreate:
		buf = txcodec.PutUint64(buf, t.OfferCreate.TakerPays)
		buf = txcodec.PutUint64(buf, t.OfferCreate.TakerGets)
	case txcodec.TxOfferCancel:
		buf = txcodec.PutUint32(buf, t.OfferCancel.OfferSequence)
	case txcodec.TxEscrowCreate:
		buf = txcodec.PutUint64(buf, t.EscrowCreate.Amount)
		buf = txcodec.PutUint32(buf, t.EscrowCreate.CancelAfter)
	case txcodec.TxCheckCreate:
		buf = txcodec.PutFixed(buf, t.CheckCreate.Destination[:], 20)
		buf = txcodec.PutUint64(buf, t.CheckCreate.SendMax)
	case txcodec.TxPaymentChannelCreate:
		buf = txcodec.PutFixed(buf, t.PaymentChannelCreate.Destination[:], 20)
		buf = txcodec.PutUint64(buf, t.PaymentChannelCreate.Amount)
		buf = txcodec.PutUint32(buf, t.PaymentChannelCreate.SettleDelay)
	}
	return buf
}

func fixed20(b []byte) [20]byte {
	var out [20]byte
	copy(out[:], b)
	return out
}
