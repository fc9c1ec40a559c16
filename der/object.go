package der

import (
	"github.com/pkg/errors"
)

// Tag bytes for the supported universal types. The subset is deliberately
// minimal; new types get new constants rather than being inferred.
const (
	TagInteger   byte = 0x02
	TagBitString byte = 0x03
	TagSequence  byte = 0x30
)

// highTagMask selects the low five bits of a tag byte; when they are all
// set the tag continues into following bytes, which is unsupported.
const highTagMask = 0x1F

// Object is a single DER element: a tag byte and its raw payload. It is
// the framing layer the typed codecs build on.
type Object struct {
	Tag     byte
	Payload []byte
}

// Encode returns the complete TLV: tag, length octets, payload.
func (o *Object) Encode() []byte {
	lengthOctets := EncodeLength(len(o.Payload))
	out := make([]byte, 0, 1+len(lengthOctets)+len(o.Payload))
	out = append(out, o.Tag)
	out = append(out, lengthOctets...)
	return append(out, o.Payload...)
}

// Decode consumes one TLV from the front of buf and re-initializes the
// object with it. The returned index points at the first unconsumed byte,
// letting callers chain parses of concatenated TLVs. With strict set, the
// TLV must span the entire buffer.
func (o *Object) Decode(buf []byte, strict bool) (int, error) {
	if len(buf) == 0 {
		return 0, errors.Wrap(ErrShortBuffer, "missing tag octet")
	}
	tag := buf[0]
	if tag&highTagMask == highTagMask {
		return 0, errors.Wrapf(ErrUnsupportedTag, "tag 0x%02x uses the high-tag-number form", tag)
	}
	n, idx, err := DecodeLength(buf, 1)
	if err != nil {
		return 0, err
	}
	end := idx + n
	if end < idx || end > len(buf) {
		return 0, errors.Wrapf(ErrShortBuffer, "payload declares %d bytes, %d available", n, len(buf)-idx)
	}
	if strict && end != len(buf) {
		return 0, errors.Wrapf(ErrTrailingData, "%d bytes left over", len(buf)-end)
	}
	o.Tag = tag
	o.Payload = buf[idx:end]
	return end, nil
}
