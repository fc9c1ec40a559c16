// Package pkcs1 serializes RSA key material in the PKCS#1 DER layout
// (RFC 8017, appendix A.1), built entirely on the der codec.
package pkcs1

import (
	"crypto/rsa"
	"math"
	"math/big"

	"derkit/der"

	"github.com/pkg/errors"
)

// rsaPrivateKeyFields is the field count of a two-prime RSAPrivateKey:
// version, n, e, d, p, q, dP, dQ, qInv.
const rsaPrivateKeyFields = 9

var bigOne = big.NewInt(1)

// MarshalPrivateKey returns the PKCS#1 DER encoding of key. Only
// two-prime keys are supported.
func MarshalPrivateKey(key *rsa.PrivateKey) ([]byte, error) {
	if len(key.Primes) != 2 {
		return nil, errors.Errorf("expected a two-prime key, got %d primes", len(key.Primes))
	}
	p := key.Primes[0]
	q := key.Primes[1]
	dP := new(big.Int).Mod(key.D, new(big.Int).Sub(p, bigOne))
	dQ := new(big.Int).Mod(key.D, new(big.Int).Sub(q, bigOne))
	qInv := new(big.Int).ModInverse(q, p)
	if qInv == nil {
		return nil, errors.New("key primes are not coprime")
	}

	seq := der.NewSequence()
	seq.AppendUint64(0) // version: two-prime
	seq.AppendInt(key.N)
	seq.AppendInt(big.NewInt(int64(key.E)))
	seq.AppendInt(key.D)
	seq.AppendInt(p)
	seq.AppendInt(q)
	seq.AppendInt(dP)
	seq.AppendInt(dQ)
	seq.AppendInt(qInv)
	out, err := seq.Encode()
	if err != nil {
		return nil, errors.Wrap(err, "error encoding private key")
	}
	return out, nil
}

// ParsePrivateKey decodes a PKCS#1 RSAPrivateKey. The buffer must hold
// exactly one key. The parsed key is precomputed and validated.
func ParsePrivateKey(buf []byte) (*rsa.PrivateKey, error) {
	seq := der.NewSequence()
	if _, err := seq.Decode(buf, true); err != nil {
		return nil, errors.Wrap(err, "error decoding private key")
	}
	fields, err := integerFields(seq)
	if err != nil {
		return nil, err
	}
	if len(fields) != rsaPrivateKeyFields {
		return nil, errors.Errorf("RSAPrivateKey must hold %d integers, got %d", rsaPrivateKeyFields, len(fields))
	}
	if fields[0].Sign() != 0 {
		return nil, errors.Errorf("unsupported RSAPrivateKey version %s", fields[0])
	}
	e, err := publicExponent(fields[2])
	if err != nil {
		return nil, err
	}

	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: fields[1],
			E: e,
		},
		D:      fields[3],
		Primes: []*big.Int{fields[4], fields[5]},
	}
	key.Precompute()
	if err := key.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return key, nil
}

// MarshalPublicKey returns the PKCS#1 DER encoding of key.
func MarshalPublicKey(key *rsa.PublicKey) ([]byte, error) {
	seq := der.NewSequence()
	seq.AppendInt(key.N)
	seq.AppendInt(big.NewInt(int64(key.E)))
	out, err := seq.Encode()
	if err != nil {
		return nil, errors.Wrap(err, "error encoding public key")
	}
	return out, nil
}

// ParsePublicKey decodes a PKCS#1 RSAPublicKey. The buffer must hold
// exactly one key.
func ParsePublicKey(buf []byte) (*rsa.PublicKey, error) {
	seq := der.NewSequence()
	if _, err := seq.Decode(buf, true); err != nil {
		return nil, errors.Wrap(err, "error decoding public key")
	}
	fields, err := integerFields(seq)
	if err != nil {
		return nil, err
	}
	if len(fields) != 2 {
		return nil, errors.Errorf("RSAPublicKey must hold 2 integers, got %d", len(fields))
	}
	e, err := publicExponent(fields[1])
	if err != nil {
		return nil, err
	}
	return &rsa.PublicKey{N: fields[0], E: e}, nil
}

func integerFields(seq *der.Sequence) ([]*big.Int, error) {
	out := make([]*big.Int, seq.Len())
	for i := range out {
		el, err := seq.Get(i)
		if err != nil {
			return nil, err
		}
		intEl, ok := el.(der.IntegerElement)
		if !ok {
			return nil, errors.Errorf("field %d is not an integer", i)
		}
		out[i] = intEl.Value
	}
	return out, nil
}

func publicExponent(e *big.Int) (int, error) {
	if !e.IsInt64() || e.Int64() > math.MaxInt32 {
		return 0, errors.New("public exponent too large")
	}
	if e.Int64() < 2 {
		return 0, errors.New("public exponent too small")
	}
	return int(e.Int64()), nil
}
