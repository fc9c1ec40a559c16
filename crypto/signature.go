package crypto

import (
	"math/big"

	"derkit/der"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

// Signature is an ECDSA signature over the secp256k1 curve. Its wire form
// is the standard DER SEQUENCE of the two INTEGERs r and s, which is also
// what btcec and every other DER-speaking verifier consumes.
type Signature struct {
	R *big.Int
	S *big.Int
}

// SignDigest signs a 32-byte digest with priv.
func SignDigest(priv *btcec.PrivateKey, digest Hash) (*Signature, error) {
	sig, err := priv.Sign(digest.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "error signing digest")
	}
	return &Signature{R: sig.R, S: sig.S}, nil
}

// Verify reports whether the signature is valid for digest under pub.
func (s *Signature) Verify(digest Hash, pub *btcec.PublicKey) bool {
	if s.R == nil || s.S == nil {
		return false
	}
	bsig := btcec.Signature{R: s.R, S: s.S}
	return bsig.Verify(digest.Bytes(), pub)
}

// Encode returns the DER encoding of the signature.
func (s *Signature) Encode() ([]byte, error) {
	seq := der.NewSequence()
	seq.AppendInt(s.R)
	seq.AppendInt(s.S)
	out, err := seq.Encode()
	if err != nil {
		return nil, errors.Wrap(err, "error encoding signature")
	}
	return out, nil
}

// Decode consumes one DER-encoded signature from the front of buf and
// returns the index of the first unconsumed byte.
func (s *Signature) Decode(buf []byte, strict bool) (int, error) {
	seq := der.NewSequence()
	end, err := seq.Decode(buf, strict)
	if err != nil {
		return 0, errors.Wrap(err, "error decoding signature")
	}
	if seq.Len() != 2 {
		return 0, errors.Errorf("signature must hold 2 integers, got %d elements", seq.Len())
	}
	ints := make([]*big.Int, 2)
	for i := range ints {
		el, err := seq.Get(i)
		if err != nil {
			return 0, err
		}
		intEl, ok := el.(der.IntegerElement)
		if !ok {
			return 0, errors.Errorf("signature element %d is not an integer", i)
		}
		ints[i] = intEl.Value
	}
	s.R = ints[0]
	s.S = ints[1]
	return end, nil
}
