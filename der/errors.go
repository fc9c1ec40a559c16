package der

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedTag is returned when a tag byte uses the multi-byte
	// (high-tag-number) form, which this subset does not support.
	ErrUnsupportedTag = errors.New("unsupported multi-byte tag")

	// ErrInvalidLength is returned when a length field is not in canonical
	// DER form, or encodes a value that does not fit the platform int.
	ErrInvalidLength = errors.New("invalid length octets")

	// ErrShortBuffer is returned when a buffer holds fewer bytes than one
	// of its fields declares.
	ErrShortBuffer = errors.New("buffer too short")

	// ErrWrongTag is returned when a decoded tag does not match the type
	// being decoded.
	ErrWrongTag = errors.New("unexpected tag")

	// ErrNegativeInteger is returned for INTEGER values with the sign bit
	// set. Negative values are not supported.
	ErrNegativeInteger = errors.New("negative integer")

	// ErrTrailingData is returned by strict decodes when bytes remain
	// after the element.
	ErrTrailingData = errors.New("trailing data after element")

	// ErrEncoding is returned when a sequence element cannot be encoded.
	ErrEncoding = errors.New("unencodable element")

	// ErrMalformedSequence is returned when a sequence payload ends in the
	// middle of a sub-element.
	ErrMalformedSequence = errors.New("malformed sequence payload")

	// ErrIndexOutOfRange is returned by sequence accessors for indices
	// outside the element list.
	ErrIndexOutOfRange = errors.New("sequence index out of range")
)
