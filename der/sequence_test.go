package der

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSequence_EncodeMixed(t *testing.T) {
	blob := []byte{0x03, 0x02, 0xAA, 0xBB}
	seq := NewSequence()
	seq.AppendUint64(5)
	seq.AppendRaw(blob)

	enc, err := seq.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0x30, 0x07, 0x02, 0x01, 0x05, 0x03, 0x02, 0xAA, 0xBB}, enc)
}

func TestSequence_DecodeMixed(t *testing.T) {
	blob := []byte{0x03, 0x02, 0xAA, 0xBB}
	seq := NewSequence()
	seq.AppendUint64(5)
	seq.AppendRaw(blob)
	enc, err := seq.Encode()
	require.NoError(t, err)

	out := NewSequence()
	end, err := out.Decode(enc, true)
	require.NoError(t, err)
	require.Equal(t, len(enc), end)
	require.Equal(t, 2, out.Len())

	first, err := out.Get(0)
	require.NoError(t, err)
	intEl, ok := first.(IntegerElement)
	require.True(t, ok)
	require.EqualValues(t, 5, intEl.Value.Uint64())

	second, err := out.Get(1)
	require.NoError(t, err)
	rawEl, ok := second.(RawElement)
	require.True(t, ok)
	require.Equal(t, blob, []byte(rawEl))
}

func TestSequence_RoundTripLong(t *testing.T) {
	// Payload over 127 bytes forces a long-form sequence length.
	seq := NewSequence()
	for i := 0; i < 40; i++ {
		seq.AppendUint64(uint64(i) * 1000)
	}
	seq.AppendRaw((&Object{Tag: TagBitString, Payload: bytes.Repeat([]byte{0xCC}, 64)}).Encode())

	enc, err := seq.Encode()
	require.NoError(t, err)
	require.Equal(t, byte(0x81), enc[1])

	out := NewSequence()
	end, err := out.Decode(enc, true)
	require.NoError(t, err)
	require.Equal(t, len(enc), end)
	require.Equal(t, seq.Len(), out.Len())
	for i := 0; i < 40; i++ {
		el, err := out.Get(i)
		require.NoError(t, err)
		require.EqualValues(t, uint64(i)*1000, el.(IntegerElement).Value.Uint64())
	}
}

func TestSequence_DecodeEmpty(t *testing.T) {
	out := NewSequence()
	end, err := out.Decode([]byte{0x30, 0x00}, true)
	require.NoError(t, err)
	require.Equal(t, 2, end)
	require.Zero(t, out.Len())
}

func TestSequence_DecodeWrongTag(t *testing.T) {
	out := NewSequence()
	_, err := out.Decode([]byte{0x02, 0x01, 0x00}, true)
	require.True(t, errors.Is(err, ErrWrongTag))
}

func TestSequence_DecodeResetsElements(t *testing.T) {
	seq := NewSequence()
	seq.AppendUint64(1)
	enc, err := seq.Encode()
	require.NoError(t, err)

	out := NewSequence()
	_, err = out.Decode(enc, true)
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())

	// A failed decode must not leave the earlier elements behind.
	_, err = out.Decode([]byte{0x30, 0x02, 0x02, 0x05}, true)
	require.Error(t, err)
	require.Zero(t, out.Len())
}

func TestSequence_DecodeTruncatedElement(t *testing.T) {
	// Raw sub-element declares 4 payload bytes but the sequence ends early.
	out := NewSequence()
	_, err := out.Decode([]byte{0x30, 0x03, 0x03, 0x04, 0xAA}, true)
	require.True(t, errors.Is(err, ErrMalformedSequence))

	// Integer sub-element truncated mid-payload.
	_, err = out.Decode([]byte{0x30, 0x02, 0x02, 0x05}, true)
	require.True(t, errors.Is(err, ErrMalformedSequence))

	// Raw sub-element with a tag byte but no length octet.
	_, err = out.Decode([]byte{0x30, 0x01, 0x03}, true)
	require.True(t, errors.Is(err, ErrMalformedSequence))
}

func TestSequence_DecodeInnerInvalidLength(t *testing.T) {
	// Non-canonical length inside a sub-element keeps its own kind.
	out := NewSequence()
	_, err := out.Decode([]byte{0x30, 0x04, 0x03, 0x81, 0x05, 0x00}, false)
	require.True(t, errors.Is(err, ErrInvalidLength))
}

func TestSequence_StrictVsLenient(t *testing.T) {
	seq := NewSequence()
	seq.AppendUint64(9)
	enc, err := seq.Encode()
	require.NoError(t, err)
	buf := append(enc, 0xFF, 0xFF)

	out := NewSequence()
	_, err = out.Decode(buf, true)
	require.True(t, errors.Is(err, ErrTrailingData))

	end, err := out.Decode(buf, false)
	require.NoError(t, err)
	require.Equal(t, len(enc), end)
	require.Equal(t, 1, out.Len())
}

func TestSequence_EncodeNilElement(t *testing.T) {
	seq := NewSequence()
	seq.Append(nil)
	_, err := seq.Encode()
	require.True(t, errors.Is(err, ErrEncoding))
}

func TestSequence_EncodeNegativeElement(t *testing.T) {
	seq := NewSequence()
	seq.AppendInt(big.NewInt(-42))
	_, err := seq.Encode()
	require.True(t, errors.Is(err, ErrNegativeInteger))
}

func TestSequence_CollectionOps(t *testing.T) {
	seq := NewSequence()
	for i := 0; i < 5; i++ {
		seq.AppendUint64(uint64(i))
	}
	require.Equal(t, 5, seq.Len())

	require.NoError(t, seq.Set(0, IntegerElement{Value: big.NewInt(100)}))
	el, err := seq.Get(0)
	require.NoError(t, err)
	require.EqualValues(t, 100, el.(IntegerElement).Value.Uint64())

	require.NoError(t, seq.Delete(4))
	require.Equal(t, 4, seq.Len())

	mid, err := seq.Slice(1, 3)
	require.NoError(t, err)
	require.Len(t, mid, 2)
	require.EqualValues(t, 1, mid[0].(IntegerElement).Value.Uint64())

	require.NoError(t, seq.ReplaceRange(1, 3, []Element{RawElement{0x03, 0x00}}))
	require.Equal(t, 3, seq.Len())
	el, err = seq.Get(1)
	require.NoError(t, err)
	require.IsType(t, RawElement{}, el)

	require.NoError(t, seq.DeleteRange(0, 2))
	require.Equal(t, 1, seq.Len())
	el, err = seq.Get(0)
	require.NoError(t, err)
	require.EqualValues(t, 3, el.(IntegerElement).Value.Uint64())
}

func TestSequence_CollectionOpsOutOfRange(t *testing.T) {
	seq := NewSequence()
	seq.AppendUint64(1)

	_, err := seq.Get(1)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = seq.Get(-1)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.True(t, errors.Is(seq.Set(1, RawElement{}), ErrIndexOutOfRange))
	require.True(t, errors.Is(seq.Delete(3), ErrIndexOutOfRange))
	_, err = seq.Slice(0, 2)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.True(t, errors.Is(seq.ReplaceRange(1, 0, nil), ErrIndexOutOfRange))
}

func TestSequence_NestedSequenceCarriedOpaquely(t *testing.T) {
	inner := NewSequence()
	inner.AppendUint64(7)
	innerEnc, err := inner.Encode()
	require.NoError(t, err)

	outer := NewSequence()
	outer.AppendUint64(1)
	outer.AppendRaw(innerEnc)
	enc, err := outer.Encode()
	require.NoError(t, err)

	out := NewSequence()
	_, err = out.Decode(enc, true)
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	el, err := out.Get(1)
	require.NoError(t, err)
	require.Equal(t, innerEnc, []byte(el.(RawElement)))

	// The opaque slice is itself decodable as a sequence.
	nested := NewSequence()
	_, err = nested.Decode([]byte(el.(RawElement)), true)
	require.NoError(t, err)
	require.Equal(t, 1, nested.Len())
}
