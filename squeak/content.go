package squeak

import (
	"crypto/cipher"
	"crypto/sha256"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/breez/squeaknode/squeakcrypto"
)

// contentNonce is fixed: each squeak's symmetric key is single-use (it is
// freshly generated per squeak by MakeSqueak and never reused across
// squeaks), so a constant nonce does not repeat under a given key.
var contentNonce = make([]byte, chacha20poly1305.NonceSize)

func cipherForKey(key squeakcrypto.Scalar) (cipher.AEAD, error) {
	// The AEAD key is derived from the scalar rather than used directly,
	// so a secret_key recovered from the wrong sale (a different
	// squeak's key) decrypts to garbage/AEAD-failure rather than
	// silently producing a plausible-looking wrong plaintext.
	derived := sha256.Sum256(append([]byte("squeak-content:"), key[:]...))
	return chacha20poly1305.New(derived[:])
}

// encryptContent seals plaintext under secretKey.
func encryptContent(secretKey squeakcrypto.Scalar, plaintext []byte) ([]byte, error) {
	aead, err := cipherForKey(secretKey)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, contentNonce, plaintext, nil), nil
}

// GetDecryptedContent decrypts sq's content with secretKey. It fails
// with ErrInvalidKey if secretKey does not match the squeak's
// payment_point (checked first, since an AEAD failure and a wrong-key
// mismatch are otherwise indistinguishable to a caller) or if the AEAD
// open itself fails.
func GetDecryptedContent(sq *Squeak, secretKey squeakcrypto.Scalar) (string, error) {
	if squeakcrypto.ScalarToPoint(secretKey) != sq.PaymentPoint {
		return "", ErrInvalidKey
	}

	aead, err := cipherForKey(secretKey)
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Open(nil, contentNonce, sq.ContentCiphertext, nil)
	if err != nil {
		return "", ErrInvalidKey
	}

	return string(plaintext), nil
}
