package der

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"
)

// Element is a member of a Sequence. It is a closed union: the only
// implementations are IntegerElement and RawElement, chosen by the caller
// at append time.
type Element interface {
	sequenceElement()
}

// IntegerElement is a sequence member encoded as an INTEGER TLV.
type IntegerElement struct {
	Value *big.Int
}

// RawElement is a sequence member carried as a complete, already-encoded
// sub-TLV. Its internal structure is not validated.
type RawElement []byte

func (IntegerElement) sequenceElement() {}
func (RawElement) sequenceElement()     {}

// Sequence models a SEQUENCE DER element: an ordered, mutable list of
// integers and opaque sub-elements.
type Sequence struct {
	elems []Element
}

// NewSequence returns an empty Sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	return len(s.elems)
}

// Append adds el to the end of the sequence.
func (s *Sequence) Append(el Element) {
	s.elems = append(s.elems, el)
}

// AppendInt adds an integer element holding value.
func (s *Sequence) AppendInt(value *big.Int) {
	s.Append(IntegerElement{Value: value})
}

// AppendUint64 adds an integer element holding v.
func (s *Sequence) AppendUint64(v uint64) {
	s.AppendInt(new(big.Int).SetUint64(v))
}

// AppendRaw adds an opaque, already-encoded sub-TLV.
func (s *Sequence) AppendRaw(raw []byte) {
	s.Append(RawElement(raw))
}

// Get returns the element at index i.
func (s *Sequence) Get(i int) (Element, error) {
	if i < 0 || i >= len(s.elems) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(s.elems))
	}
	return s.elems[i], nil
}

// Set replaces the element at index i.
func (s *Sequence) Set(i int, el Element) error {
	if i < 0 || i >= len(s.elems) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(s.elems))
	}
	s.elems[i] = el
	return nil
}

// Delete removes the element at index i.
func (s *Sequence) Delete(i int) error {
	if i < 0 || i >= len(s.elems) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(s.elems))
	}
	s.elems = append(s.elems[:i], s.elems[i+1:]...)
	return nil
}

// Slice returns a copy of the elements in [i, j).
func (s *Sequence) Slice(i, j int) ([]Element, error) {
	if err := s.checkRange(i, j); err != nil {
		return nil, err
	}
	out := make([]Element, j-i)
	copy(out, s.elems[i:j])
	return out, nil
}

// ReplaceRange replaces the elements in [i, j) with els. The range and the
// replacement may differ in length.
func (s *Sequence) ReplaceRange(i, j int, els []Element) error {
	if err := s.checkRange(i, j); err != nil {
		return err
	}
	out := make([]Element, 0, len(s.elems)-(j-i)+len(els))
	out = append(out, s.elems[:i]...)
	out = append(out, els...)
	out = append(out, s.elems[j:]...)
	s.elems = out
	return nil
}

// DeleteRange removes the elements in [i, j).
func (s *Sequence) DeleteRange(i, j int) error {
	return s.ReplaceRange(i, j, nil)
}

func (s *Sequence) checkRange(i, j int) error {
	if i < 0 || j < i || j > len(s.elems) {
		return errors.Wrapf(ErrIndexOutOfRange, "range [%d, %d), length %d", i, j, len(s.elems))
	}
	return nil
}

// Encode returns the complete SEQUENCE TLV: each element's own encoding,
// concatenated in order and framed with the SEQUENCE tag.
func (s *Sequence) Encode() ([]byte, error) {
	var payload bytes.Buffer
	for i, el := range s.elems {
		switch e := el.(type) {
		case IntegerElement:
			enc, err := NewInteger(e.Value).Encode()
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			payload.Write(enc)
		case RawElement:
			payload.Write(e)
		default:
			return nil, errors.Wrapf(ErrEncoding, "element %d is %T", i, el)
		}
	}
	obj := Object{Tag: TagSequence, Payload: payload.Bytes()}
	return obj.Encode(), nil
}

// Decode consumes one SEQUENCE TLV from the front of buf and repopulates
// the sequence with its members: INTEGER sub-TLVs become IntegerElements,
// anything else is carried opaquely as a RawElement. The element list is
// reset before parsing, so a failed decode never leaves elements from an
// earlier one behind. Returns the index of the first unconsumed byte.
func (s *Sequence) Decode(buf []byte, strict bool) (int, error) {
	s.elems = nil
	var obj Object
	end, err := obj.Decode(buf, strict)
	if err != nil {
		return 0, err
	}
	if obj.Tag != TagSequence {
		return 0, errors.Wrapf(ErrWrongTag, "expected SEQUENCE (0x%02x), got 0x%02x", TagSequence, obj.Tag)
	}
	payload := obj.Payload
	var elems []Element
	idx := 0
	for idx < len(payload) {
		if payload[idx] == TagInteger {
			var item Integer
			n, err := item.Decode(payload[idx:], false)
			if err != nil {
				return 0, sequenceScanError(err)
			}
			elems = append(elems, IntegerElement{Value: item.Value})
			idx += n
		} else {
			itemLen, itemIdx, err := DecodeLength(payload, idx+1)
			if err != nil {
				return 0, sequenceScanError(err)
			}
			elemEnd := itemIdx + itemLen
			if elemEnd > len(payload) {
				return 0, errors.Wrapf(ErrMalformedSequence, "element at offset %d declares %d bytes, %d available", idx, itemLen, len(payload)-itemIdx)
			}
			elems = append(elems, RawElement(payload[idx:elemEnd]))
			idx = elemEnd
		}
	}
	s.elems = elems
	return end, nil
}

// sequenceScanError remaps truncation inside the payload scan to
// ErrMalformedSequence: the outer buffer held the declared payload in
// full, so running short mid-element means the sequence itself is bad.
// Other kinds pass through unchanged.
func sequenceScanError(err error) error {
	if errors.Is(err, ErrShortBuffer) {
		return errors.Wrapf(ErrMalformedSequence, "%s", err)
	}
	return err
}
