package bitmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dargueta/vsfsck/bitmap"
)

func TestWrap_MutatesUnderlyingBuffer(t *testing.T) {
	buf := make([]byte, 8)
	bm := bitmap.Wrap(buf)

	bitmap.Set(bm, 3)
	assert.True(t, bitmap.Test(bm, 3))
	assert.Equal(t, byte(1<<3), buf[0], "bit 0 of byte 0 is index 0, so bit 3 sets the 4th LSB")

	bitmap.Clear(bm, 3)
	assert.False(t, bitmap.Test(bm, 3))
	assert.Equal(t, byte(0), buf[0])
}

func TestWrap_BitZeroIsByteZeroLSB(t *testing.T) {
	buf := make([]byte, 1)
	bm := bitmap.Wrap(buf)

	bitmap.Set(bm, 0)
	require.Equal(t, byte(1), buf[0])
}

func TestNew_StartsClear(t *testing.T) {
	bm := bitmap.New(64)
	for i := 0; i < 64; i++ {
		assert.False(t, bitmap.Test(bm, i))
	}
}

func TestSetAndClear_Independent(t *testing.T) {
	buf := make([]byte, 16)
	bm := bitmap.Wrap(buf)

	bitmap.Set(bm, 0)
	bitmap.Set(bm, 63)
	assert.True(t, bitmap.Test(bm, 0))
	assert.True(t, bitmap.Test(bm, 63))
	assert.False(t, bitmap.Test(bm, 1))

	bitmap.Clear(bm, 0)
	assert.False(t, bitmap.Test(bm, 0))
	assert.True(t, bitmap.Test(bm, 63))
}
