package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acctID(b byte) AccountID {
	var a AccountID
	for i := range a {
		a[i] = b
	}
	return a
}

func TestAccountState_SortedIDs(t *testing.T) {
	s := NewAccountState()
	s.Put(&Account{ID: acctID(0x03)})
	s.Put(&Account{ID: acctID(0x01)})
	s.Put(&Account{ID: acctID(0x02)})

	ids := s.SortedIDs()
	require.Len(t, ids, 3)
	assert.Equal(t, acctID(0x01), ids[0])
	assert.Equal(t, acctID(0x02), ids[1])
	assert.Equal(t, acctID(0x03), ids[2])
}

func TestAccountState_ComputeStateHash_Deterministic(t *testing.T) {
	build := func() *AccountState {
		s := NewAccountState()
		s.Put(&Account{ID: acctID(0x01), Balance: 1000 * XRP, Sequence: 5})
		s.Put(&Account{ID: acctID(0x02), Balance: 50 * XRP, Sequence: 1})
		return s
	}

	h1 := build().ComputeStateHash()
	h2 := build().ComputeStateHash()
	assert.Equal(t, h1, h2)
}

func TestAccountState_ComputeStateHash_SensitiveToContent(t *testing.T) {
	s1 := NewAccountState()
	s1.Put(&Account{ID: acctID(0x01), Balance: 1000 * XRP, Sequence: 5})

	s2 := NewAccountState()
	s2.Put(&Account{ID: acctID(0x01), Balance: 999 * XRP, Sequence: 5})

	assert.NotEqual(t, s1.ComputeStateHash(), s2.ComputeStateHash())
}

func TestAccountState_Clone_IsIndependent(t *testing.T) {
	s := NewAccountState()
	s.Put(&Account{ID: acctID(0x01), Balance: 100})

	clone := s.Clone()
	a, _ := clone.Get(acctID(0x01))
	a.Balance = 999

	original, _ := s.Get(acctID(0x01))
	assert.Equal(t, Drops(100), original.Balance)
}
