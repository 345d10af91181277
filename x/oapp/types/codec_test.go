package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayloadRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"Test message.",
		DefaultData,
		"\x00\xff\x00",
		strings.Repeat("x", 32),
		strings.Repeat("y", 33),
		"héllo wörld",
	} {
		bz, err := EncodePayload(s)
		require.NoError(t, err)
		require.Zero(t, len(bz)%32)

		got, err := DecodePayload(bz)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestEncodePayloadLayout(t *testing.T) {
	bz, err := EncodePayload("Test message.")
	require.NoError(t, err)
	require.Len(t, bz, 96)
	require.Equal(t, byte(0x20), bz[31])
	require.Equal(t, byte(len("Test message.")), bz[63])
	require.Equal(t, "Test message.", string(bz[64:64+len("Test message.")]))

	empty, err := EncodePayload("")
	require.NoError(t, err)
	require.Len(t, empty, 64)
}

func TestDecodePayloadRejectsMalformed(t *testing.T) {
	valid, err := EncodePayload("Test message.")
	require.NoError(t, err)

	badOffset := append([]byte{}, valid...)
	badOffset[31] = 0x40

	badLength := append([]byte{}, valid...)
	badLength[63] = 0xff

	trailing := append(append([]byte{}, valid...), make([]byte, 32)...)

	cases := map[string][]byte{
		"empty":     nil,
		"truncated": valid[:len(valid)-1],
		"offset":    badOffset,
		"length":    badLength,
		"trailing":  trailing,
		"garbage":   []byte("not abi"),
	}
	for name, bz := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodePayload(bz)
			require.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}
