package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dargueta/vsfsck/check"
	"github.com/dargueta/vsfsck/geometry"
	"github.com/dargueta/vsfsck/ondisk"
	"github.com/dargueta/vsfsck/testutil"
)

func TestReconcileDataBitmap_CleanImage(t *testing.T) {
	img := testutil.NewCleanImage()
	ctx := loadContext(t, img)

	collector := &check.Collector{}
	clean, err := check.ReconcileDataBitmap(ctx, collector)

	require.NoError(t, err)
	assert.True(t, clean)
	assert.Empty(t, collector.Items)
}

func TestReconcileDataBitmap_ReservedRegionAlwaysUsed(t *testing.T) {
	img := testutil.NewCleanImage()
	ctx := loadContext(t, img)

	clean, err := check.ReconcileDataBitmap(ctx, &check.Collector{})
	require.NoError(t, err)
	assert.True(t, clean)

	for i := 0; i < geometry.DataBlockStart; i++ {
		assert.True(t, bitmapBit(ctx.DataBitmap, i), "reserved block %d must read as used", i)
	}
}

func TestReconcileDataBitmap_UnderCountSetsStoredBit(t *testing.T) {
	img := testutil.NewCleanImage()
	img.SetInode(0, ondisk.Inode{LinksCount: 1, DirectPtr: 15})
	// Stored bitmap bit 15 stays clear: inode references it but the bitmap
	// disagrees.
	ctx := loadContext(t, img)

	collector := &check.Collector{}
	clean, err := check.ReconcileDataBitmap(ctx, collector)

	require.NoError(t, err)
	assert.False(t, clean)
	require.Len(t, collector.Items, 1)
	assert.Contains(t, collector.Items[0].Message, "referenced")
	assert.True(t, bitmapBit(ctx.DataBitmap, 15))
}

func TestReconcileDataBitmap_OverCountClearsStoredBit(t *testing.T) {
	img := testutil.NewCleanImage()
	img.SetDataBitmapBit(20, true)
	ctx := loadContext(t, img)

	collector := &check.Collector{}
	clean, err := check.ReconcileDataBitmap(ctx, collector)

	require.NoError(t, err)
	assert.False(t, clean)
	require.Len(t, collector.Items, 1)
	assert.Contains(t, collector.Items[0].Message, "not referenced")
	assert.False(t, bitmapBit(ctx.DataBitmap, 20))
}

func TestReconcileDataBitmap_SingleIndirectOneHop(t *testing.T) {
	img := testutil.NewCleanImage()
	img.SetInode(0, ondisk.Inode{LinksCount: 1, SingleIndirect: 10})
	img.SetIndexBlockEntry(10, 0, 11)
	img.SetIndexBlockEntry(10, 1, 12)
	ctx := loadContext(t, img)

	collector := &check.Collector{}
	clean, err := check.ReconcileDataBitmap(ctx, collector)
	require.NoError(t, err)

	// Block 10 (the index block itself), 11 and 12 (its entries) must all
	// end up marked used; none of this was true in the clean image.
	assert.False(t, clean)
	assert.True(t, bitmapBit(ctx.DataBitmap, 10))
	assert.True(t, bitmapBit(ctx.DataBitmap, 11))
	assert.True(t, bitmapBit(ctx.DataBitmap, 12))
}

func bitmapBit(buf []byte, i int) bool {
	return buf[i/8]&(1<<uint(i%8)) != 0
}
