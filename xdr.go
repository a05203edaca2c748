// Package xdr encodes and decodes values in the External Data Representation
// format of RFC 1014. Application types participate by implementing Codec;
// the Encoder and Decoder in this file drive the framing rules (big-endian,
// four-byte alignment, length-prefixing, padding) that RFC 1014 mandates.
package xdr

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// pad4 returns the number of zero bytes needed to round n up to a multiple of 4.
func pad4(n int) int {
	return (4 - (n % 4)) % 4
}

// Narrow integer ranges: the valid signed/unsigned range for a bit width b in {8, 16}.
const (
	minInt8  = -1 << 7
	maxInt8  = 1<<7 - 1
	maxUint8 = 1<<8 - 1

	minInt16  = -1 << 15
	maxInt16  = 1<<15 - 1
	maxUint16 = 1<<16 - 1

	maxLength = math.MaxUint32
)

// Encoder dispatches data-model calls into XDR bytes, writing through an
// exclusively held Sink. Construct one per encode with NewEncoder; it is
// discarded once the outermost value has been written.
type Encoder struct {
	sink Sink
	word [8]byte
}

// NewEncoder creates an Encoder that writes through sink.
func NewEncoder(sink Sink) *Encoder {
	return &Encoder{sink: sink}
}

func (e *Encoder) writeRaw(p []byte) error {
	if _, err := e.sink.Write(p); err != nil {
		return wrapEncodeIo("byte stream", err)
	}
	return nil
}

func (e *Encoder) writeU32(v uint32) error {
	binary.BigEndian.PutUint32(e.word[:4], v)
	return e.writeRaw(e.word[:4])
}

func (e *Encoder) writeU64(v uint64) error {
	binary.BigEndian.PutUint64(e.word[:8], v)
	return e.writeRaw(e.word[:8])
}

// EncodeBool writes v as a 32-bit 0 or 1.
func (e *Encoder) EncodeBool(v bool) error {
	if v {
		return e.writeU32(1)
	}
	return e.writeU32(0)
}

// EncodeI8 sign-extends v into a 32-bit slot.
func (e *Encoder) EncodeI8(v int8) error { return e.writeU32(uint32(int32(v))) }

// EncodeU8 zero-extends v into a 32-bit slot.
func (e *Encoder) EncodeU8(v uint8) error { return e.writeU32(uint32(v)) }

// EncodeI16 sign-extends v into a 32-bit slot.
func (e *Encoder) EncodeI16(v int16) error { return e.writeU32(uint32(int32(v))) }

// EncodeU16 zero-extends v into a 32-bit slot.
func (e *Encoder) EncodeU16(v uint16) error { return e.writeU32(uint32(v)) }

// EncodeI32 writes a 32-bit signed integer.
func (e *Encoder) EncodeI32(v int32) error { return e.writeU32(uint32(v)) }

// EncodeU32 writes a 32-bit unsigned integer.
func (e *Encoder) EncodeU32(v uint32) error { return e.writeU32(v) }

// EncodeI64 writes a 64-bit signed integer.
func (e *Encoder) EncodeI64(v int64) error { return e.writeU64(uint64(v)) }

// EncodeU64 writes a 64-bit unsigned integer.
func (e *Encoder) EncodeU64(v uint64) error { return e.writeU64(v) }

// EncodeF32 writes an IEEE-754 single precision float.
func (e *Encoder) EncodeF32(v float32) error { return e.writeU32(math.Float32bits(v)) }

// EncodeF64 writes an IEEE-754 double precision float.
func (e *Encoder) EncodeF64(v float64) error { return e.writeU64(math.Float64bits(v)) }

// EncodeChar writes a Unicode scalar value as a 32-bit code point.
func (e *Encoder) EncodeChar(v rune) error { return e.writeU32(uint32(v)) }

// EncodeUnit writes nothing; unit values occupy zero bytes on the wire.
func (e *Encoder) EncodeUnit() error { return nil }

// EncodeOpaque writes a variable-length opaque blob: a u32 length, the bytes,
// then pad4(len) zero bytes.
func (e *Encoder) EncodeOpaque(v []byte) error {
	if len(v) > maxLength {
		return &EncodeError{Kind: EncodeOpaqueTooLong, Length: uint64(len(v))}
	}
	if err := e.writeU32(uint32(len(v))); err != nil {
		return err
	}
	if err := e.writeRaw(v); err != nil {
		return err
	}
	return e.writePadding(len(v))
}

// EncodeString writes a counted string: ASCII bytes, length-prefixed and
// padded to 4. Non-ASCII bytes are rejected.
func (e *Encoder) EncodeString(v string) error {
	for i := 0; i < len(v); i++ {
		if v[i] >= 0x80 {
			return &EncodeError{Kind: EncodeStringNotASCII, String: v}
		}
	}
	if len(v) > maxLength {
		return &EncodeError{Kind: EncodeStringTooLong, String: v, Length: uint64(len(v))}
	}
	return e.EncodeOpaque([]byte(v))
}

func (e *Encoder) writePadding(length int) error {
	n := pad4(length)
	if n == 0 {
		return nil
	}
	var zero [4]byte
	return e.writeRaw(zero[:n])
}

// EncodeOption writes the presence discriminant and, if present, runs encode
// to write the payload.
func (e *Encoder) EncodeOption(present bool, encode func(*Encoder) error) error {
	if !present {
		return e.writeU32(0)
	}
	if err := e.writeU32(1); err != nil {
		return err
	}
	return encode(e)
}

// Map always fails: XDR has no map representation.
func (e *Encoder) Map() error {
	return &EncodeError{Kind: EncodeMapNotSupported}
}

// Decoder dispatches XDR bytes into data-model constructor calls, reading
// through an exclusively held Source. Construct one per decode with
// NewDecoder; it is discarded once the outermost value has been produced.
type Decoder struct {
	source Source
}

// NewDecoder creates a Decoder that reads through source.
func NewDecoder(source Source) *Decoder {
	return &Decoder{source: source}
}

func (d *Decoder) readRaw(n int) ([]byte, error) {
	b, err := d.source.ReadFull(n)
	if err != nil {
		return nil, wrapDecodeIo("byte stream", err)
	}
	return b, nil
}

func (d *Decoder) readU32() (uint32, error) {
	b, err := d.readRaw(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *Decoder) readU64() (uint64, error) {
	b, err := d.readRaw(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// DecodeBool reads a 32-bit discriminant; 0 is false, 1 is true, anything
// else is InvalidBool.
func (d *Decoder) DecodeBool() (bool, error) {
	v, err := d.readU32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &DecodeError{Kind: DecodeInvalidBool, Raw: v}
	}
}

// DecodeI8 reads a 32-bit slot and validates it fits in an int8.
func (d *Decoder) DecodeI8() (int8, error) {
	v, err := d.readU32()
	if err != nil {
		return 0, err
	}
	signed := int32(v)
	if signed < minInt8 || signed > maxInt8 {
		return 0, &DecodeError{Kind: DecodeInvalidSignedInteger, Bits: 8, Value: int64(signed)}
	}
	return int8(signed), nil
}

// DecodeU8 reads a 32-bit slot and validates it fits in a uint8.
func (d *Decoder) DecodeU8() (uint8, error) {
	v, err := d.readU32()
	if err != nil {
		return 0, err
	}
	if v > maxUint8 {
		return 0, &DecodeError{Kind: DecodeInvalidUnsignedInteger, Bits: 8, Value: int64(v)}
	}
	return uint8(v), nil
}

// DecodeI16 reads a 32-bit slot and validates it fits in an int16.
func (d *Decoder) DecodeI16() (int16, error) {
	v, err := d.readU32()
	if err != nil {
		return 0, err
	}
	signed := int32(v)
	if signed < minInt16 || signed > maxInt16 {
		return 0, &DecodeError{Kind: DecodeInvalidSignedInteger, Bits: 16, Value: int64(signed)}
	}
	return int16(signed), nil
}

// DecodeU16 reads a 32-bit slot and validates it fits in a uint16.
func (d *Decoder) DecodeU16() (uint16, error) {
	v, err := d.readU32()
	if err != nil {
		return 0, err
	}
	if v > maxUint16 {
		return 0, &DecodeError{Kind: DecodeInvalidUnsignedInteger, Bits: 16, Value: int64(v)}
	}
	return uint16(v), nil
}

// DecodeI32 reads a 32-bit signed integer.
func (d *Decoder) DecodeI32() (int32, error) {
	v, err := d.readU32()
	return int32(v), err
}

// DecodeU32 reads a 32-bit unsigned integer.
func (d *Decoder) DecodeU32() (uint32, error) {
	return d.readU32()
}

// DecodeI64 reads a 64-bit signed integer.
func (d *Decoder) DecodeI64() (int64, error) {
	v, err := d.readU64()
	return int64(v), err
}

// DecodeU64 reads a 64-bit unsigned integer.
func (d *Decoder) DecodeU64() (uint64, error) {
	return d.readU64()
}

// DecodeF32 reads an IEEE-754 single precision float.
func (d *Decoder) DecodeF32() (float32, error) {
	v, err := d.readU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// DecodeF64 reads an IEEE-754 double precision float.
func (d *Decoder) DecodeF64() (float64, error) {
	v, err := d.readU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// DecodeChar reads a 32-bit Unicode scalar value.
func (d *Decoder) DecodeChar() (rune, error) {
	v, err := d.readU32()
	if err != nil {
		return 0, err
	}
	if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
		return 0, &DecodeError{Kind: DecodeInvalidChar, Raw: v}
	}
	return rune(v), nil
}

// DecodeUnit consumes nothing.
func (d *Decoder) DecodeUnit() error { return nil }

// DecodeOpaque reads a variable-length opaque blob: length L, then L+pad4(L)
// bytes, truncated to L. The returned slice is freshly allocated and owned
// by the caller.
func (d *Decoder) DecodeOpaque() ([]byte, error) {
	length, err := d.readU32()
	if err != nil {
		return nil, err
	}
	total := int(length) + pad4(int(length))
	raw, err := d.readRaw(total)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, raw[:length])
	return out, nil
}

// DecodeString reads a counted string and validates it is UTF-8.
func (d *Decoder) DecodeString() (string, error) {
	data, err := d.DecodeOpaque()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &DecodeError{Kind: DecodeInvalidUTF8}
	}
	return string(data), nil
}

// DecodeOption reads the presence discriminant and invokes visitNone or
// visitSome accordingly.
func (d *Decoder) DecodeOption(visitNone func() error, visitSome func(*Decoder) error) error {
	v, err := d.readU32()
	if err != nil {
		return err
	}
	switch v {
	case 0:
		return visitNone()
	case 1:
		return visitSome(d)
	default:
		return &DecodeError{Kind: DecodeInvalidOption}
	}
}

// Map always fails: XDR has no map representation.
func (d *Decoder) Map() error {
	return &DecodeError{Kind: DecodeMapNotSupported}
}

// Identifier always fails: deserializing an identifier (for meta-data) is not supported.
func (d *Decoder) Identifier() error {
	return &DecodeError{Kind: DecodeIdentifierNotSupported}
}
