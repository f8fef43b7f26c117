package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXorBufferAliasing(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	XorBuffer(buf, buf, len(buf))
	require.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestIncBufferIsSuccessor(t *testing.T) {
	buf := []byte{0xff, 0x00, 0x00}
	IncBuffer(buf)
	require.Equal(t, []byte{0x00, 0x01, 0x00}, buf)
}

func TestIncBufferWraps(t *testing.T) {
	buf := []byte{0xff, 0xff, 0xff}
	IncBuffer(buf)
	require.Equal(t, []byte{0x00, 0x00, 0x00}, buf)
}

func TestPadCheck(t *testing.T) {
	require.True(t, PadCheck([]byte{5, 5, 5, 5, 5}, 5))
	require.False(t, PadCheck([]byte{5, 5, 5, 4, 5}, 5))
	require.False(t, PadCheck([]byte{1, 2}, 5))
}

func TestRotate(t *testing.T) {
	require.Equal(t, uint64(2), RotateLeft64(1, 1))
	require.Equal(t, uint64(1), RotateRight64(2, 1))
	require.Equal(t, uint32(2), RotateLeft32(1, 1))
}
