package xdr

import "fmt"

// SequenceEncoder is a linear sub-encoder returned by Encoder.Sequence. It
// accepts the sequence's elements and is terminated by End; it does not check
// the number of elements written against the declared length. Calling
// Element or End after End returns FatalSequenceState.
type SequenceEncoder struct {
	enc   *Encoder
	index int
	done  bool
}

// Sequence begins encoding a homogeneous sequence of known length: it writes
// the 32-bit length prefix and returns a sub-encoder for the elements.
func (e *Encoder) Sequence(length int) (*SequenceEncoder, error) {
	if length < 0 || length > maxLength {
		return nil, &EncodeError{Kind: EncodeSequenceTooLong, Length: uint64(length)}
	}
	if err := e.writeU32(uint32(length)); err != nil {
		return nil, err
	}
	return &SequenceEncoder{enc: e}, nil
}

// SequenceUnknownLength reports that a sequence cannot be encoded because its
// length is not known ahead of time.
func SequenceUnknownLength() error {
	return &EncodeError{Kind: EncodeSequenceUnknownLength}
}

// Element encodes one sequence element.
func (s *SequenceEncoder) Element(encode func(*Encoder) error) error {
	if s.done {
		return &EncodeError{Kind: EncodeFatalSequenceState, Name: "sequence"}
	}
	if err := encode(s.enc); err != nil {
		return wrapEncodeFailure(fmt.Sprintf("element %d of type sequence", s.index), err)
	}
	s.index++
	return nil
}

// End terminates the sequence. It is idempotent-unsafe by design: a second
// call surfaces FatalSequenceState, matching the linear-handle contract.
func (s *SequenceEncoder) End() error {
	if s.done {
		return &EncodeError{Kind: EncodeFatalSequenceState, Name: "sequence"}
	}
	s.done = true
	return nil
}

// SequenceDecoder is a linear sub-decoder returned by Decoder.Sequence. The
// caller decodes Len() elements and terminates it with End; Element does not
// check the number of calls against Len(). Element after End returns a
// Failure error.
type SequenceDecoder struct {
	dec   *Decoder
	len   int
	index int
	done  bool
}

// Sequence begins decoding a homogeneous sequence: it reads the 32-bit length
// prefix and returns a sub-decoder sized to that length.
func (d *Decoder) Sequence() (*SequenceDecoder, error) {
	length, err := d.readU32()
	if err != nil {
		return nil, err
	}
	return &SequenceDecoder{dec: d, len: int(length)}, nil
}

// Len reports the declared sequence length (the size_hint of spec.md §4.4).
func (s *SequenceDecoder) Len() int { return s.len }

// Element decodes one sequence element.
func (s *SequenceDecoder) Element(decode func(*Decoder) error) error {
	if s.done {
		return &DecodeError{Kind: DecodeFailure, What: "sequence", Cause: fmt.Errorf("decoder used after End")}
	}
	if err := decode(s.dec); err != nil {
		return wrapDecodeFailure(fmt.Sprintf("element %d of type sequence", s.index), err)
	}
	s.index++
	return nil
}

// End terminates the sequence sub-decoder.
func (s *SequenceDecoder) End() error {
	s.done = true
	return nil
}

// AggregateEncoder is a linear sub-encoder for a tuple, tuple struct, struct,
// tuple variant, or struct variant: fields are written in declaration order
// with no length prefix and no inter-field padding beyond each field's own
// alignment. Reuse after End returns FatalStructState.
type AggregateEncoder struct {
	enc      *Encoder
	kind     string // "tuple", "tuple struct", "struct", "tuple variant", "struct variant"
	typeName string
	fields   []string // field names, for struct-shaped kinds; nil for tuple-shaped kinds
	index    int
	done     bool
}

func newAggregateEncoder(enc *Encoder, kind, typeName string, fields []string) *AggregateEncoder {
	return &AggregateEncoder{enc: enc, kind: kind, typeName: typeName, fields: fields}
}

// Tuple begins encoding an unnamed, fixed-arity product type.
func (e *Encoder) Tuple(n int) *AggregateEncoder {
	return newAggregateEncoder(e, "tuple", "", nil)
}

// TupleStruct begins encoding a named tuple struct (positional fields).
func (e *Encoder) TupleStruct(name string, n int) *AggregateEncoder {
	return newAggregateEncoder(e, "tuple struct", name, nil)
}

// Struct begins encoding a named struct with the given field names.
func (e *Encoder) Struct(name string, fields []string) *AggregateEncoder {
	return newAggregateEncoder(e, "struct", name, fields)
}

func (a *AggregateEncoder) location() string {
	if a.typeName == "" {
		return a.kind
	}
	return a.kind + " " + a.typeName
}

func (a *AggregateEncoder) elementLocation() string {
	if a.index < len(a.fields) {
		return fmt.Sprintf("struct field %s::%s", a.typeName, a.fields[a.index])
	}
	if a.typeName == "" {
		return fmt.Sprintf("element %d of type %s", a.index, a.kind)
	}
	return fmt.Sprintf("element %d of type %s %s", a.index, a.kind, a.typeName)
}

// Field encodes the next field/element.
func (a *AggregateEncoder) Field(encode func(*Encoder) error) error {
	if a.done {
		return &EncodeError{Kind: EncodeFatalStructState, Name: a.location()}
	}
	loc := a.elementLocation()
	if err := encode(a.enc); err != nil {
		return wrapEncodeFailure(loc, err)
	}
	a.index++
	return nil
}

// End terminates the aggregate sub-encoder.
func (a *AggregateEncoder) End() error {
	if a.done {
		return &EncodeError{Kind: EncodeFatalStructState, Name: a.location()}
	}
	a.done = true
	return nil
}

// AggregateDecoder mirrors AggregateEncoder on the decode side.
type AggregateDecoder struct {
	dec      *Decoder
	kind     string
	typeName string
	fields   []string
	index    int
	done     bool
}

func newAggregateDecoder(dec *Decoder, kind, typeName string, fields []string) *AggregateDecoder {
	return &AggregateDecoder{dec: dec, kind: kind, typeName: typeName, fields: fields}
}

// Tuple begins decoding n positional elements; n must not exceed 2^32-1.
func (d *Decoder) Tuple(n int) (*AggregateDecoder, error) {
	if n > maxLength {
		return nil, &DecodeError{Kind: DecodeTupleTooLong, Length: uint64(n)}
	}
	return newAggregateDecoder(d, "tuple", "", nil), nil
}

// TupleStruct begins decoding n positional fields of a named tuple struct.
func (d *Decoder) TupleStruct(name string, n int) (*AggregateDecoder, error) {
	if n > maxLength {
		return nil, &DecodeError{Kind: DecodeTupleTooLong, Length: uint64(n)}
	}
	return newAggregateDecoder(d, "tuple struct", name, nil), nil
}

// Struct begins decoding the named fields of a struct, in declaration order.
func (d *Decoder) Struct(name string, fields []string) (*AggregateDecoder, error) {
	return newAggregateDecoder(d, "struct", name, fields), nil
}

func (a *AggregateDecoder) elementLocation() string {
	if a.index < len(a.fields) {
		return fmt.Sprintf("struct field %s::%s", a.typeName, a.fields[a.index])
	}
	if a.typeName == "" {
		return fmt.Sprintf("element %d of type %s", a.index, a.kind)
	}
	return fmt.Sprintf("element %d of type %s %s", a.index, a.kind, a.typeName)
}

// Field decodes the next field/element.
func (a *AggregateDecoder) Field(decode func(*Decoder) error) error {
	loc := a.elementLocation()
	if err := decode(a.dec); err != nil {
		return wrapDecodeFailure(loc, err)
	}
	a.index++
	return nil
}

// End terminates the aggregate sub-decoder.
func (a *AggregateDecoder) End() error {
	a.done = true
	return nil
}

// UnitVariant writes a tagged union discriminant with no payload.
func (e *Encoder) UnitVariant(index uint32) error {
	return e.writeU32(index)
}

// NewtypeVariant writes the discriminant, then runs encode to write the
// single payload value, wrapping any failure with the variant's location.
func (e *Encoder) NewtypeVariant(typeName, variantName string, index uint32, encode func(*Encoder) error) error {
	if err := e.writeU32(index); err != nil {
		return err
	}
	if err := encode(e); err != nil {
		return wrapEncodeFailure(fmt.Sprintf("enum variant %s::%s", typeName, variantName), err)
	}
	return nil
}

// TupleVariant writes the discriminant and returns a sub-encoder for the
// variant's positional payload fields.
func (e *Encoder) TupleVariant(typeName, variantName string, index uint32, n int) (*AggregateEncoder, error) {
	if err := e.writeU32(index); err != nil {
		return nil, err
	}
	return newAggregateEncoder(e, "tuple variant", typeName+"::"+variantName, nil), nil
}

// StructVariant writes the discriminant and returns a sub-encoder for the
// variant's named payload fields.
func (e *Encoder) StructVariant(typeName, variantName string, index uint32, fields []string) (*AggregateEncoder, error) {
	if err := e.writeU32(index); err != nil {
		return nil, err
	}
	return newAggregateEncoder(e, "struct variant", typeName+"::"+variantName, fields), nil
}

// EnumVariant reads the 32-bit discriminant and resolves it against the
// known variant names, in declaration order. An out-of-range index yields
// InvalidEnumVariant rather than panicking.
func (d *Decoder) EnumVariant(variants []string) (index uint32, name string, err error) {
	v, err := d.readU32()
	if err != nil {
		return 0, "", err
	}
	if int(v) >= len(variants) {
		return 0, "", &DecodeError{Kind: DecodeInvalidEnumVariant, Variant: v, Variants: variants}
	}
	return v, variants[v], nil
}

// NewtypeVariantPayload decodes a newtype variant's single payload value,
// wrapping any failure with the variant's location.
func (d *Decoder) NewtypeVariantPayload(typeName, variantName string, decode func(*Decoder) error) error {
	if err := decode(d); err != nil {
		return wrapDecodeFailure(fmt.Sprintf("enum variant %s::%s", typeName, variantName), err)
	}
	return nil
}

// TupleVariant returns a sub-decoder for a tuple variant's positional payload
// fields.
func (d *Decoder) TupleVariant(typeName, variantName string, n int) (*AggregateDecoder, error) {
	return newAggregateDecoder(d, "tuple variant", typeName+"::"+variantName, nil), nil
}

// StructVariant returns a sub-decoder for a struct variant's named payload
// fields.
func (d *Decoder) StructVariant(typeName, variantName string, fields []string) (*AggregateDecoder, error) {
	return newAggregateDecoder(d, "struct variant", typeName+"::"+variantName, fields), nil
}
