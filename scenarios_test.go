package xdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioS1UnsignedWord covers S1: a bare u32 round trip.
func TestScenarioS1UnsignedWord(t *testing.T) {
	sink := NewByteSink()
	require.NoError(t, NewEncoder(sink).EncodeU32(0x8000100E))
	assert.Equal(t, []byte{0x80, 0x00, 0x10, 0x0E}, sink.Bytes())

	v, err := NewDecoder(NewByteSource(sink.Bytes())).DecodeU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x8000100E), v)
}

// fileRecord mirrors S6's end-to-end record:
//
//	{filename: string, filetype: enum{Dir,Regular,Exec(string)}, owner: string, data: opaque}
type fileRecord struct {
	Filename string
	Filetype fileType
	Owner    string
	Data     []byte
}

type fileType struct {
	variant string // "Dir", "Regular", or "Exec"
	exec    string // payload, when variant == "Exec"
}

var fileTypeVariants = []string{"Dir", "Regular", "Exec"}

func (f *fileRecord) Encode(enc *Encoder) error {
	s := enc.Struct("fileRecord", []string{"Filename", "Filetype", "Owner", "Data"})
	if err := s.Field(func(e *Encoder) error { return e.EncodeString(f.Filename) }); err != nil {
		return err
	}
	if err := s.Field(func(e *Encoder) error { return f.Filetype.Encode(e) }); err != nil {
		return err
	}
	if err := s.Field(func(e *Encoder) error { return e.EncodeString(f.Owner) }); err != nil {
		return err
	}
	if err := s.Field(func(e *Encoder) error { return e.EncodeOpaque(f.Data) }); err != nil {
		return err
	}
	return s.End()
}

func (f *fileRecord) Decode(dec *Decoder) error {
	s, err := dec.Struct("fileRecord", []string{"Filename", "Filetype", "Owner", "Data"})
	if err != nil {
		return err
	}
	if err := s.Field(func(d *Decoder) (err error) { f.Filename, err = d.DecodeString(); return }); err != nil {
		return err
	}
	if err := s.Field(func(d *Decoder) error { return f.Filetype.Decode(d) }); err != nil {
		return err
	}
	if err := s.Field(func(d *Decoder) (err error) { f.Owner, err = d.DecodeString(); return }); err != nil {
		return err
	}
	if err := s.Field(func(d *Decoder) (err error) { f.Data, err = d.DecodeOpaque(); return }); err != nil {
		return err
	}
	return s.End()
}

func (f *fileType) Encode(enc *Encoder) error {
	idx := uint32(0)
	for i, name := range fileTypeVariants {
		if name == f.variant {
			idx = uint32(i)
		}
	}
	if f.variant == "Exec" {
		return enc.NewtypeVariant("fileType", "Exec", idx, func(e *Encoder) error { return e.EncodeString(f.exec) })
	}
	return enc.UnitVariant(idx)
}

func (f *fileType) Decode(dec *Decoder) error {
	idx, name, err := dec.EnumVariant(fileTypeVariants)
	if err != nil {
		return err
	}
	f.variant = name
	if name == "Exec" {
		return dec.NewtypeVariantPayload("fileType", name, func(d *Decoder) (err error) { f.exec, err = d.DecodeString(); return })
	}
	_ = idx
	return nil
}

// TestScenarioS6EndToEndRecord covers S6: a four-field record whose second
// field is a tagged-union enum carrying a string payload.
func TestScenarioS6EndToEndRecord(t *testing.T) {
	rec := &fileRecord{
		Filename: "sillyprog",
		Filetype: fileType{variant: "Exec", exec: "lisp"},
		Owner:    "john",
		Data:     []byte("(quit)"),
	}

	data, err := Marshal(rec)
	require.NoError(t, err)

	want := []byte{
		0x00, 0x00, 0x00, 0x09, 's', 'i', 'l', 'l', 'y', 'p', 'r', 'o', 'g', 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x04, 'l', 'i', 's', 'p',
		0x00, 0x00, 0x00, 0x04, 'j', 'o', 'h', 'n',
		0x00, 0x00, 0x00, 0x06, '(', 'q', 'u', 'i', 't', ')', 0x00, 0x00,
	}
	assert.Equal(t, want, data)

	var decoded fileRecord
	require.NoError(t, Unmarshal(data, &decoded))
	assert.Equal(t, "sillyprog", decoded.Filename)
	assert.Equal(t, "Exec", decoded.Filetype.variant)
	assert.Equal(t, "lisp", decoded.Filetype.exec)
	assert.Equal(t, "john", decoded.Owner)
	assert.Equal(t, []byte("(quit)"), decoded.Data)
}

// TestScenarioS7FixedOpaque covers S7 directly against FixedOpaque.
func TestScenarioS7FixedOpaque(t *testing.T) {
	sink := NewByteSink()
	require.NoError(t, FixedOpaque.Encode(NewEncoder(sink), []byte{1, 1, 2, 3, 5}))
	assert.Equal(t, []byte{0x01, 0x01, 0x02, 0x03, 0x05, 0x00, 0x00, 0x00}, sink.Bytes())

	got, err := FixedOpaque.Decode(NewDecoder(NewByteSource(sink.Bytes())), 5)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 1, 2, 3, 5}, got)
}
