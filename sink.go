package xdr

import "io"

// Sink is the write-side collaborator an Encoder writes XDR bytes through.
// Any io.Writer satisfies Sink; the encoder never requires more than Write.
type Sink interface {
	io.Writer
}

// ByteSink is a Sink that accumulates the written bytes in memory. It backs
// EncodeToBytes and is useful directly when the caller wants the raw buffer
// without going through the top-level adapters.
type ByteSink struct {
	buf []byte
}

// NewByteSink returns an empty, growable ByteSink.
func NewByteSink() *ByteSink {
	return &ByteSink{}
}

// Write appends p to the sink. It never fails.
func (s *ByteSink) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Bytes returns the bytes written so far. The slice is owned by the sink and
// must not be retained across further writes.
func (s *ByteSink) Bytes() []byte {
	return s.buf
}
