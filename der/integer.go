package der

import (
	"math/big"

	"github.com/pkg/errors"
)

// Integer models an INTEGER DER element holding a non-negative
// arbitrary-precision value. The zero value decodes in place; use
// NewInteger to build one for encoding.
type Integer struct {
	Value *big.Int
}

// NewInteger returns an Integer wrapping value. A nil value is treated as
// zero.
func NewInteger(value *big.Int) *Integer {
	if value == nil {
		value = new(big.Int)
	}
	return &Integer{Value: value}
}

// NewIntegerFromUint64 returns an Integer holding v.
func NewIntegerFromUint64(v uint64) *Integer {
	return &Integer{Value: new(big.Int).SetUint64(v)}
}

// Encode returns the complete INTEGER TLV. The payload is the minimal
// big-endian representation of the value, prefixed with 0x00 when its
// high bit is set so the value stays non-negative under two's-complement
// interpretation. Zero encodes as a single 0x00 byte.
func (i *Integer) Encode() ([]byte, error) {
	value := i.Value
	if value == nil {
		value = new(big.Int)
	}
	if value.Sign() < 0 {
		return nil, errors.Wrap(ErrNegativeInteger, "cannot encode")
	}
	payload := value.Bytes()
	if len(payload) == 0 {
		payload = []byte{0x00}
	} else if payload[0]&0x80 != 0 {
		payload = append([]byte{0x00}, payload...)
	}
	obj := Object{Tag: TagInteger, Payload: payload}
	return obj.Encode(), nil
}

// Decode consumes one INTEGER TLV from the front of buf, replaces the
// value with it, and returns the index of the first unconsumed byte.
func (i *Integer) Decode(buf []byte, strict bool) (int, error) {
	var obj Object
	end, err := obj.Decode(buf, strict)
	if err != nil {
		return 0, err
	}
	if obj.Tag != TagInteger {
		return 0, errors.Wrapf(ErrWrongTag, "expected INTEGER (0x%02x), got 0x%02x", TagInteger, obj.Tag)
	}
	if len(obj.Payload) > 0 && obj.Payload[0]&0x80 != 0 {
		return 0, errors.Wrap(ErrNegativeInteger, "sign bit set")
	}
	i.Value = new(big.Int).SetBytes(obj.Payload)
	return end, nil
}
