package xdr

import (
	"fmt"
	"io"
)

// Codec is the data-model interface: the indirection that lets the Encoder
// and Decoder drive a user type's wire representation without knowing its
// shape in advance. A type implements Codec either by hand (see the Person
// type in example_test.go) or with generated code driven by a struct's field
// layout; either way, Encode/Decode are the only contract the codec core
// requires.
type Codec interface {
	// Encode encodes the value to XDR format using the provided encoder.
	Encode(enc *Encoder) error

	// Decode decodes the value from XDR format using the provided decoder.
	Decode(dec *Decoder) error
}

// Marshal provides generic XDR encoding for any type implementing Codec.
// It encodes into a fresh in-memory ByteSink; EncodeToBytes is a thin
// alias for it.
func Marshal(codec Codec) ([]byte, error) {
	sink := NewByteSink()
	enc := NewEncoder(sink)

	if err := codec.Encode(enc); err != nil {
		return nil, fmt.Errorf("XDR encoding failed: %w", err)
	}
	return sink.Bytes(), nil
}

// MarshalRaw wraps pre-encoded XDR data in a consistent interface. Used for
// exceptional cases like sparse attribute encoding where custom encoding
// logic outside the Codec interface is required.
func MarshalRaw(data []byte) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("data cannot be nil")
	}
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Unmarshal provides generic XDR decoding for any type implementing Codec.
func Unmarshal(data []byte, codec Codec) error {
	dec := NewDecoder(NewByteSource(data))
	if err := codec.Decode(dec); err != nil {
		return fmt.Errorf("XDR decoding failed: %w", err)
	}
	return nil
}

// EncodeToBytes encodes v by constructing an in-memory byte sink and running
// the encoder, returning the resulting bytes.
func EncodeToBytes(v Codec) ([]byte, error) {
	return Marshal(v)
}

// EncodeToSink runs the encoder against an existing byte sink, such as a
// bytes.Buffer, a net.Conn, or any other io.Writer.
func EncodeToSink(sink Sink, v Codec) error {
	enc := NewEncoder(sink)
	if err := v.Encode(enc); err != nil {
		return fmt.Errorf("XDR encoding failed: %w", err)
	}
	return nil
}

// DecodeFromSource constructs a decoder from a readable byte source and
// decodes into v.
func DecodeFromSource(source Source, v Codec) error {
	dec := NewDecoder(source)
	if err := v.Decode(dec); err != nil {
		return fmt.Errorf("XDR decoding failed: %w", err)
	}
	return nil
}

// DecodeFromBytes wraps a byte buffer as a source and decodes into v.
func DecodeFromBytes(data []byte, v Codec) error {
	return Unmarshal(data, v)
}

// DecodeFromReader wraps an io.Reader as a streaming Source and decodes into
// v without first buffering the whole message.
func DecodeFromReader(r io.Reader, v Codec) error {
	return DecodeFromSource(NewStreamSource(r), v)
}
