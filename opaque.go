package xdr

// FixedOpaque encodes and decodes byte arrays of a compile-time-known
// length. Unlike a homogeneous sequence of bytes, which would drive each
// byte through the element-at-a-time sequence path (one 32-bit slot per
// byte, quadrupling the size), FixedOpaque packs four bytes per 32-bit word
// and carries no length prefix: the length is known to both sides from the
// type itself.
var FixedOpaque fixedOpaque

type fixedOpaque struct{}

// Encode writes data as ceil(len(data)/4) consecutive 32-bit words, the last
// word's low-order padding bits zeroed.
func (fixedOpaque) Encode(e *Encoder, data []byte) error {
	numWords := (len(data) + 3) / 4
	for i := 0; i < numWords; i++ {
		var word uint32
		for b := 0; b < 4; b++ {
			word <<= 8
			idx := i*4 + b
			if idx < len(data) {
				word |= uint32(data[idx])
			}
		}
		if err := e.writeU32(word); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads ceil(length/4) words and reconstructs exactly length bytes,
// discarding the padding bits of the final word.
func (fixedOpaque) Decode(d *Decoder, length int) ([]byte, error) {
	numWords := (length + 3) / 4
	out := make([]byte, length)
	for i := 0; i < numWords; i++ {
		word, err := d.readU32()
		if err != nil {
			return nil, err
		}
		for b := 0; b < 4; b++ {
			idx := i*4 + b
			if idx < length {
				out[idx] = byte(word >> uint((3-b)*8))
			}
		}
	}
	return out, nil
}

// VariableLengthOpaqueData is a byte-vector-like container whose wire form is
// identical to a variable-length opaque blob (u32 length, bytes, pad to 4),
// but which is exposed to user code with the transparent accessor operations
// of a growable byte container. It resolves the same framing ambiguity as
// FixedOpaque, for the variable-length case: a []byte field on a Codec type
// would otherwise be ambiguous between "homogeneous sequence of bytes" and
// "opaque blob" were it not for this wrapper's fixed encoding.
type VariableLengthOpaqueData struct {
	data []byte
}

// NewVariableLengthOpaqueData wraps data without copying it.
func NewVariableLengthOpaqueData(data []byte) VariableLengthOpaqueData {
	return VariableLengthOpaqueData{data: data}
}

// Bytes returns the underlying byte slice.
func (v VariableLengthOpaqueData) Bytes() []byte { return v.data }

// Len reports the number of bytes held.
func (v VariableLengthOpaqueData) Len() int { return len(v.data) }

// Append grows the container, mirroring the append builtin.
func (v *VariableLengthOpaqueData) Append(p ...byte) {
	v.data = append(v.data, p...)
}

// Encode writes the container as a variable-length opaque blob.
func (v VariableLengthOpaqueData) Encode(e *Encoder) error {
	return e.EncodeOpaque(v.data)
}

// Decode populates the container from a variable-length opaque blob.
func (v *VariableLengthOpaqueData) Decode(d *Decoder) error {
	data, err := d.DecodeOpaque()
	if err != nil {
		return err
	}
	v.data = data
	return nil
}
