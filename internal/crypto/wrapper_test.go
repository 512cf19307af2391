package crypto_test

import (
	"testing"

	"github.com/goxrpld/lab/internal/crypto"
	"github.com/goxrpld/lab/internal/crypto/algorithms/ed25519"
)

type MockSignatureProvider struct {
	generateKeypairCalled bool
	signMessageCalled     bool
	verifySignatureCalled bool
}

func (m *MockSignatureProvider) GenerateKeypair(seed []byte, isValidator bool) (string, string, error) {
	m.generateKeypairCalled = true
	return "private", "public", nil
}

func (m *MockSignatureProvider) SignMessage(message, privateKeyHex string) (string, error) {
	m.signMessageCalled = true
	return "signature", nil
}

func (m *MockSignatureProvider) VerifySignature(message, publicKeyHex, signatureHex string) bool {
	m.verifySignatureCalled = true
	return true
}

func TestWrapperWithMockProvider(t *testing.T) {
	mock := &MockSignatureProvider{}
	wrapper := crypto.NewED25519Wrapper(mock)

	if wrapper.GetCryptoType() != crypto.ED25519 {
		t.Error("wrong crypto type for ED25519 wrapper")
	}

	_, _, err := wrapper.GenerateKeypair([]byte("seed"), false)
	if err != nil {
		t.Fatalf("keypair generation failed: %v", err)
	}
	if !mock.generateKeypairCalled {
		t.Error("expected GenerateKeypair to be delegated to provider")
	}

	_, err = wrapper.SignMessage("msg", "priv")
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	if !mock.signMessageCalled {
		t.Error("expected SignMessage to be delegated to provider")
	}

	if !wrapper.VerifySignature("msg", "pub", "sig") {
		t.Error("expected verification to succeed against mock")
	}
	if !mock.verifySignatureCalled {
		t.Error("expected VerifySignature to be delegated to provider")
	}
}

func TestWrapperWithED25519Provider(t *testing.T) {
	seed := []byte("test seed for wrapper roundtrip!")
	message := "test message"

	w := crypto.NewED25519Wrapper(ed25519.NewED25519Provider())

	priv, pub, err := w.GenerateKeypair(seed, false)
	if err != nil {
		t.Fatalf("ED25519 keypair generation failed: %v", err)
	}

	sig, err := w.SignMessage(message, priv)
	if err != nil {
		t.Fatalf("ED25519 signing failed: %v", err)
	}

	if !w.VerifySignature(message, pub, sig) {
		t.Error("ED25519 signature verification failed")
	}

	// Negative control: tampered message must fail verification.
	if w.VerifySignature("tampered message", pub, sig) {
		t.Error("expected verification to fail for tampered message")
	}
}
