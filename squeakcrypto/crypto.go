// Package squeakcrypto implements the scalar-tweak arithmetic and hashing
// primitives the squeak sale protocol is built on: every secret_key,
// nonce, and preimage in the system is a 32-byte scalar in the group used
// by btcec.S256(), and a sale works by adding and later subtracting a
// per-sale nonce from the squeak's decryption key.
package squeakcrypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/go-errors/errors"
)

// Scalar is a 32-byte big-endian value interpreted modulo the order of
// btcec.S256(). secret_key, nonce and preimage are all Scalars.
type Scalar [32]byte

// Point is a 33-byte compressed secp256k1 public key.
type Point [33]byte

var curve = btcec.S256()

// ErrInvalidSqueak is returned by CheckSqueak when a squeak fails its
// signature, canonical-form, or payment-point well-formedness checks.
var ErrInvalidSqueak = errors.New("invalid squeak")

func scalarToBigInt(s Scalar) *big.Int {
	return new(big.Int).SetBytes(s[:])
}

func bigIntToScalar(i *big.Int) Scalar {
	var s Scalar
	b := i.Bytes()
	// i is always reduced mod curve.N first, so b is at most 32 bytes.
	copy(s[32-len(b):], b)
	return s
}

// TweakAdd returns a+b mod the curve order.
func TweakAdd(a, b Scalar) Scalar {
	sum := new(big.Int).Add(scalarToBigInt(a), scalarToBigInt(b))
	sum.Mod(sum, curve.N)
	return bigIntToScalar(sum)
}

// TweakSub returns a-b mod the curve order. It is the exact inverse of
// TweakAdd: TweakSub(TweakAdd(a, b), b) == a for all a, b.
func TweakSub(a, b Scalar) Scalar {
	diff := new(big.Int).Sub(scalarToBigInt(a), scalarToBigInt(b))
	diff.Mod(diff, curve.N)
	return bigIntToScalar(diff)
}

// GenerateTweak returns a cryptographically random, non-zero scalar in
// [1, curve.N).
func GenerateTweak() (Scalar, error) {
	for {
		var buf [32]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return Scalar{}, err
		}
		i := new(big.Int).SetBytes(buf[:])
		if i.Sign() == 0 || i.Cmp(curve.N) >= 0 {
			continue
		}
		return Scalar(buf), nil
	}
}

// ScalarToPoint computes the compressed public point G*s for the scalar s.
func ScalarToPoint(s Scalar) Point {
	_, pub := btcec.PrivKeyFromBytes(curve, s[:])
	var p Point
	copy(p[:], pub.SerializeCompressed())
	return p
}

// Hash returns the SHA-256 digest of data. squeak.Squeak.Hash uses it
// over the squeak's canonical serialization to obtain the squeak's
// identity.
func Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// ValidatePoint fails with ErrInvalidSqueak if p is not a well-formed
// compressed secp256k1 point.
func ValidatePoint(p Point) error {
	if _, err := btcec.ParsePubKey(p[:], curve); err != nil {
		return fmt.Errorf("%w: malformed payment point: %v", ErrInvalidSqueak, err)
	}
	return nil
}
