package xdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedOpaqueRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x01},
		{0x01, 0x02, 0x03},
		{0x01, 0x02, 0x03, 0x04},
		{0x01, 0x02, 0x03, 0x04, 0x05},
		{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x01},
	}
	for _, data := range cases {
		sink := NewByteSink()
		enc := NewEncoder(sink)
		require.NoError(t, FixedOpaque.Encode(enc, data))
		assert.Zero(t, len(sink.Bytes())%4, "word-packed output must be word aligned")
		assert.Equal(t, (len(data)+3)/4*4, len(sink.Bytes()))

		dec := NewDecoder(NewByteSource(sink.Bytes()))
		got, err := FixedOpaque.Decode(dec, len(data))
		require.NoError(t, err)
		if len(data) == 0 {
			assert.Empty(t, got)
		} else {
			assert.Equal(t, data, got)
		}
	}
}

func TestFixedOpaquePaddingIsZeroed(t *testing.T) {
	sink := NewByteSink()
	enc := NewEncoder(sink)
	require.NoError(t, FixedOpaque.Encode(enc, []byte{0x01, 0x02, 0x03}))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x00}, sink.Bytes())
}

func TestVariableLengthOpaqueData(t *testing.T) {
	v := NewVariableLengthOpaqueData([]byte("hi"))
	v.Append('!', '!')
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, []byte("hi!!"), v.Bytes())

	sink := NewByteSink()
	enc := NewEncoder(sink)
	require.NoError(t, v.Encode(enc))
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x04, 'h', 'i', '!', '!'}, sink.Bytes())

	var decoded VariableLengthOpaqueData
	dec := NewDecoder(NewByteSource(sink.Bytes()))
	require.NoError(t, decoded.Decode(dec))
	assert.Equal(t, []byte("hi!!"), decoded.Bytes())
}
