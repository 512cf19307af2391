package gate

import (
	"fmt"

	"github.com/goxrpld/lab/internal/crypto"
	"github.com/goxrpld/lab/internal/crypto/algorithms/ed25519"
	cryptocommon "github.com/goxrpld/lab/internal/crypto/common"
)

// signingDomains are the distinct hash prefixes a signing-domain check must
// exercise (spec.md §4.B, §8: "Negative controls required: ... wrong
// signing domain").
var signingDomains = []crypto.HashPrefix{
	crypto.HashPrefixTransactionID,
	crypto.HashPrefixTxSign,
	crypto.HashPrefixProposal,
}

// CryptoVectorsCheck exercises Ed25519 sign/verify over a handful of fixed
// seeds, requiring at least 3 positive vectors and 3 signing-domain
// separation checks (spec.md §8 Gate C). In strict mode it additionally
// runs negative checks (a tampered message for each vector, plus one
// signature checked against the wrong public key) and requires at least 3
// of them to fail verification.
func CryptoVectorsCheck(strict bool) Checker {
	return func() CheckResult {
		provider := ed25519.NewED25519Provider()

		type vector struct {
			message string
			private string
			public  string
		}
		vectors := make([]vector, 0, 3)
		for i := 0; i < 3; i++ {
			seed := []byte(fmt.Sprintf("gate-crypto-vector-%d", i))
			private, public, err := provider.GenerateKeypair(seed, false)
			if err != nil {
				return CheckResult{Name: "crypto_vectors", Pass: false, Reason: fmt.Sprintf("keypair generation failed: %v", err)}
			}
			vectors = append(vectors, vector{message: fmt.Sprintf("gate message %d", i), private: private, public: public})
		}

		positive := 0
		for _, v := range vectors {
			sig, err := provider.SignMessage(v.message, v.private)
			if err != nil {
				return CheckResult{Name: "crypto_vectors", Pass: false, Reason: fmt.Sprintf("signing failed: %v", err)}
			}
			if provider.VerifySignature(v.message, v.public, sig) {
				positive++
			}
		}
		if positive < 3 {
			return CheckResult{Name: "crypto_vectors", Pass: false, Reason: fmt.Sprintf("only %d of 3 required positive vectors verified", positive)}
		}

		domainChecks := 0
		for i := 0; i < len(signingDomains); i++ {
			for j := i + 1; j < len(signingDomains); j++ {
				a := crypto.PrependHashPrefix(signingDomains[i], []byte("same payload"))
				b := crypto.PrependHashPrefix(signingDomains[j], []byte("same payload"))
				if cryptocommon.Sha512Half(a) != cryptocommon.Sha512Half(b) {
					domainChecks++
				}
			}
		}
		if domainChecks < 3 {
			return CheckResult{Name: "crypto_vectors", Pass: false, Reason: fmt.Sprintf("only %d of 3 required signing-domain separations held", domainChecks)}
		}

		if !strict {
			return CheckResult{Name: "crypto_vectors", Pass: true}
		}

		negative := 0
		for _, v := range vectors {
			sig, err := provider.SignMessage(v.message, v.private)
			if err != nil {
				return CheckResult{Name: "crypto_vectors", Pass: false, Reason: fmt.Sprintf("signing failed: %v", err)}
			}
			if !provider.VerifySignature(v.message+" tampered", v.public, sig) {
				negative++
			}
		}
		otherPublic := vectors[0].public
		if len(vectors) > 1 {
			otherPublic = vectors[1].public
		}
		sig0, err := provider.SignMessage(vectors[0].message, vectors[0].private)
		if err != nil {
			return CheckResult{Name: "crypto_vectors", Pass: false, Reason: fmt.Sprintf("signing failed: %v", err)}
		}
		if !provider.VerifySignature(vectors[0].message, otherPublic, sig0) {
			negative++
		}

		if negative < 3 {
			return CheckResult{Name: "crypto_vectors", Pass: false, Reason: fmt.Sprintf("only %d of 3 required negative vectors failed verification as expected", negative)}
		}

		return CheckResult{Name: "crypto_vectors", Pass: true}
	}
}
