package der

import (
	"strconv"

	"github.com/pkg/errors"
)

const maxLengthOctets = strconv.IntSize / 8

// EncodeLength returns the DER length octets for a payload of n bytes.
// Payloads of up to 127 bytes use the single-byte short form. Anything
// larger uses the long form: 0x80|k followed by the minimal k-byte
// big-endian encoding of n. n must be non-negative.
func EncodeLength(n int) []byte {
	if n <= 0x7F {
		return []byte{byte(n)}
	}
	var enc [maxLengthOctets]byte
	i := len(enc)
	for v := uint(n); v > 0; v >>= 8 {
		i--
		enc[i] = byte(v)
	}
	out := make([]byte, 0, 1+len(enc)-i)
	out = append(out, 0x80|byte(len(enc)-i))
	return append(out, enc[i:]...)
}

// DecodeLength reads the DER length field starting at buf[idx] and returns
// the payload length together with the index of the first byte following
// the field. Long-form encodings of values that fit the short form are
// rejected as non-canonical.
func DecodeLength(buf []byte, idx int) (int, int, error) {
	if idx >= len(buf) {
		return 0, 0, errors.Wrap(ErrShortBuffer, "missing length octet")
	}
	b := buf[idx]
	if b <= 0x7F {
		return int(b), idx + 1, nil
	}
	k := int(b & 0x7F)
	if idx+1+k > len(buf) {
		return 0, 0, errors.Wrapf(ErrShortBuffer, "length field declares %d octets, %d available", k, len(buf)-idx-1)
	}
	if k > maxLengthOctets {
		return 0, 0, errors.Wrapf(ErrInvalidLength, "%d length octets exceed the platform integer width", k)
	}
	n := 0
	for _, c := range buf[idx+1 : idx+1+k] {
		n = n<<8 | int(c)
	}
	if n < 0 {
		return 0, 0, errors.Wrap(ErrInvalidLength, "length overflows the platform integer width")
	}
	if n <= 0x7F {
		return 0, 0, errors.Wrapf(ErrInvalidLength, "long form used for length %d", n)
	}
	return n, idx + 1 + k, nil
}
