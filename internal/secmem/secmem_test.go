package secmem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocFreeWipesContents(t *testing.T) {
	p := Default()
	b := p.Alloc(32)
	require.NotNil(t, b)
	require.Equal(t, 32, b.Len())

	buf := b.Bytes()
	copy(buf, []byte("super secret key material here!"))
	p.Free(b)

	for _, x := range buf {
		require.Zero(t, x)
	}
}

func TestFreeNilIsNoop(t *testing.T) {
	require.NotPanics(t, func() { Default().Free(nil) })
}

func TestStatsTracksLiveAllocations(t *testing.T) {
	p := &Pool{}
	before := p.Stats().LiveAllocations
	b := p.Alloc(16)
	require.Equal(t, before+1, p.Stats().LiveAllocations)
	p.Free(b)
	require.Equal(t, before, p.Stats().LiveAllocations)
}
