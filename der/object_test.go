package der

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestObject_EncodeShortForm(t *testing.T) {
	obj := Object{Tag: TagBitString, Payload: []byte{0x00, 0xAA}}
	require.Equal(t, []byte{0x03, 0x02, 0x00, 0xAA}, obj.Encode())
}

func TestObject_EncodeLongForm(t *testing.T) {
	payload := bytes.Repeat([]byte{0x5A}, 200)
	obj := Object{Tag: TagSequence, Payload: payload}
	enc := obj.Encode()
	require.Equal(t, []byte{0x30, 0x81, 0xC8}, enc[:3])
	require.Equal(t, payload, enc[3:])
}

func TestObject_DecodeRoundTrip(t *testing.T) {
	in := Object{Tag: TagBitString, Payload: []byte{0x00, 0x01, 0x02}}
	var out Object
	end, err := out.Decode(in.Encode(), true)
	require.NoError(t, err)
	require.Equal(t, 5, end)
	require.Equal(t, in.Tag, out.Tag)
	require.Equal(t, in.Payload, out.Payload)
}

func TestObject_DecodeStrictVsLenient(t *testing.T) {
	buf := append((&Object{Tag: TagBitString, Payload: []byte{0xAA}}).Encode(), 0xDE, 0xAD)

	var obj Object
	_, err := obj.Decode(buf, true)
	require.True(t, errors.Is(err, ErrTrailingData))

	end, err := obj.Decode(buf, false)
	require.NoError(t, err)
	require.Equal(t, 3, end)
	require.Equal(t, []byte{0xDE, 0xAD}, buf[end:])
}

func TestObject_DecodeHighTagNumber(t *testing.T) {
	var obj Object
	_, err := obj.Decode([]byte{0x1F, 0x00}, true)
	require.True(t, errors.Is(err, ErrUnsupportedTag))

	_, err = obj.Decode([]byte{0xBF, 0x00}, true)
	require.True(t, errors.Is(err, ErrUnsupportedTag))
}

func TestObject_DecodeShortBuffer(t *testing.T) {
	var obj Object
	_, err := obj.Decode(nil, true)
	require.True(t, errors.Is(err, ErrShortBuffer))

	// Tag only, no length.
	_, err = obj.Decode([]byte{0x02}, true)
	require.True(t, errors.Is(err, ErrShortBuffer))

	// Declares three payload bytes, provides one.
	_, err = obj.Decode([]byte{0x02, 0x03, 0x01}, false)
	require.True(t, errors.Is(err, ErrShortBuffer))
}

func TestObject_DecodeEmptyPayload(t *testing.T) {
	var obj Object
	end, err := obj.Decode([]byte{0x30, 0x00}, true)
	require.NoError(t, err)
	require.Equal(t, 2, end)
	require.Equal(t, TagSequence, obj.Tag)
	require.Len(t, obj.Payload, 0)
}
