// Package bitmap provides the test/set/clear primitives the consistency
// checks use to read and repair the inode and data allocation bitmaps. It
// is a thin façade over github.com/boljen/go-bitmap: Wrap reinterprets a
// raw block buffer in place (no copy) so mutations land directly in the
// buffer that gets flushed back to disk.
package bitmap

import (
	gobitmap "github.com/boljen/go-bitmap"
)

// Bitmap is bit-indexed storage, bit 0 = byte 0's LSB.
type Bitmap = gobitmap.Bitmap

// Wrap reinterprets buf as a Bitmap without copying it. Bits beyond the
// caller's relevant count are left as "don't care" — it is the caller's
// responsibility to only Test/Set/Clear indices that matter.
func Wrap(buf []byte) Bitmap {
	return Bitmap(buf)
}

// New allocates a scratch bitmap with room for at least nbits bits, all
// initially clear.
func New(nbits int) Bitmap {
	return gobitmap.New(nbits)
}

// Test reports whether bit i is set.
func Test(bm Bitmap, i int) bool {
	return bm.Get(i)
}

// Set sets bit i.
func Set(bm Bitmap, i int) {
	bm.Set(i, true)
}

// Clear clears bit i.
func Clear(bm Bitmap, i int) {
	bm.Set(i, false)
}
