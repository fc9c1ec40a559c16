/*
Package der implements a restricted subset of the ASN.1 Distinguished
Encoding Rules (DER) as specified in ITU-T X.690: tag-length-value framing,
non-negative arbitrary-precision INTEGERs, and SEQUENCEs whose members are
either INTEGERs or opaque, already-encoded sub-elements.

Supported tags:

	- 0x02 INTEGER: minimal big-endian payload, non-negative only. A 0x00
	  pad byte is present when, and only when, the most significant bit of
	  the minimal representation is set.
	- 0x03 BIT STRING: carried as opaque bytes, contents not interpreted.
	- 0x30 SEQUENCE: concatenation of member TLVs, length-delimited.

Lengths use the two canonical DER forms: a single byte for payloads of
0-127 bytes, or 0x80|k followed by k big-endian bytes for anything larger.
Non-canonical long-form encodings are rejected on decode.

Each codec type exposes Encode, returning the complete TLV, and Decode,
which consumes one TLV from the front of a buffer and returns the index of
the first unconsumed byte. Passing strict=true to Decode additionally
requires that the TLV spans the entire buffer.

High-tag-number tags, negative integers, indefinite and other BER length
forms, and the remaining universal types are out of scope. Extending the
supported tag set means adding new explicit constants and codec types, not
loosening the existing ones.
*/
package der
