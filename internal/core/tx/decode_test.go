package tx

import (
	"testing"

	"github.com/goxrpld/lab/internal/codec/txcodec"
	"github.com/goxrpld/lab/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatedAccount(b byte) ledger.AccountID {
	var a ledger.AccountID
	for i := range a {
		a[i] = b
	}
	return a
}

func TestDecode_AccountSetScenario(t *testing.T) {
	// spec §8 scenario 1 worked blob.
	blob := []byte{0x00, 0x03}
	account := repeatedAccount(0x01)
	blob = append(blob, account[:]...)
	blob = append(blob, 0, 0, 0, 0, 0, 0, 0, 0x0A) // fee = 10 drops
	blob = append(blob, 0, 0, 0, 0x05)             // sequence = 5

	decoded, err := Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, txcodec.TxAccountSet, decoded.Type)
	assert.Equal(t, account, decoded.Account)
	assert.Equal(t, ledger.Drops(10), decoded.Fee)
	assert.Equal(t, uint32(5), decoded.Sequence)
	assert.NotNil(t, decoded.AccountSet)
}

func TestDecodeEncode_RoundTrip(t *testing.T) {
	cases := []*Transaction{
		{
			Type: txcodec.TxPayment, Account: repeatedAccount(0x01), Fee: 10, Sequence: 1,
			Payment: &PaymentFields{Destination: repeatedAccount(0x02), Amount: 5_000_000},
		},
		{
			Type: txcodec.TxAccountSet, Account: repeatedAccount(0x01), Fee: 10, Sequence: 1,
			AccountSet: &AccountSetFields{},
		},
		{
			Type: txcodec.TxTrustSet, Account: repeatedAccount(0x01), Fee: 10, Sequence: 1,
			TrustSet: &TrustSetFields{LimitCurrency: [20]byte{'U', 'S', 'D'}, LimitIssuer: repeatedAccount(0x03), LimitMantissa: 100, LimitExponent: -2},
		},
		{
			Type: txcodec.TxOfferCreate, Account: repeatedAccount(0x01), Fee: 10, Sequence: 1,
			OfferCreate: &OfferCreateFields{TakerPays: 100, TakerGets: 200},
		},
		{
			Type: txcodec.TxOfferCancel, Account: repeatedAccount(0x01), Fee: 10, Sequence: 1,
			OfferCancel: &OfferCancelFields{OfferSequence: 3},
		},
		{
			Type: txcodec.TxEscrowCreate, Account: repeatedAccount(0x01), Fee: 10, Sequence: 1,
			EscrowCreate: &EscrowCreateFields{Amount: 1000, CancelAfter: 600000000},
		},
		{
			Type: txcodec.TxCheckCreate, Account: repeatedAccount(0x01), Fee: 10, Sequence: 1,
			CheckCreate: &CheckCreateFields{Destination: repeatedAccount(0x04), SendMax: 2000},
		},
		{
			Type: txcodec.TxPaymentChannelCreate, Account: repeatedAccount(0x01), Fee: 10, Sequence: 1,
			PaymentChannelCreate: &PaymentChannelCreateFields{Destination: repeatedAccount(0x05), Amount: 3000, SettleDelay: 86400},
		},
	}

	for _, want := range cases {
		blob := Encode(want)
		got, err := Decode(blob)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDecode_RejectsWrongLength(t *testing.T) {
	blob := Encode(&Transaction{Type: txcodec.TxAccountSet, Account: repeatedAccount(0x01), Fee: 10, Sequence: 1, AccountSet: &AccountSetFields{}})
	_, err := Decode(append(blob, 0x00))
	assert.ErrorIs(t, err, txcodec.ErrInvalidTxBlob)
}
