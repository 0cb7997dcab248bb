package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dargueta/vsfsck/check"
	"github.com/dargueta/vsfsck/ondisk"
	"github.com/dargueta/vsfsck/testutil"
)

func TestCheckDuplicateBlocks_CleanImage(t *testing.T) {
	img := testutil.NewCleanImage()
	ctx := loadContext(t, img)

	collector := &check.Collector{}
	assert.True(t, check.CheckDuplicateBlocks(ctx, collector))
	assert.Empty(t, collector.Items)
}

func TestCheckDuplicateBlocks_FirstClaimantWins(t *testing.T) {
	img := testutil.NewCleanImage()
	img.SetInode(0, ondisk.Inode{LinksCount: 1, DirectPtr: 10})
	img.SetInode(1, ondisk.Inode{LinksCount: 1, DirectPtr: 10})
	ctx := loadContext(t, img)

	collector := &check.Collector{}
	clean := check.CheckDuplicateBlocks(ctx, collector)

	assert.False(t, clean)
	assert.Len(t, collector.Items, 1)
	assert.Equal(t, uint32(10), ctx.Inodes[0].DirectPtr, "first claimant keeps the block")
	assert.Equal(t, uint32(0), ctx.Inodes[1].DirectPtr, "later claimant is cleared")
}

func TestCheckDuplicateBlocks_DifferentSlotsSameInodeDoNotConflict(t *testing.T) {
	img := testutil.NewCleanImage()
	img.SetInode(0, ondisk.Inode{LinksCount: 1, DirectPtr: 10, SingleIndirect: 11})
	ctx := loadContext(t, img)

	collector := &check.Collector{}
	assert.True(t, check.CheckDuplicateBlocks(ctx, collector))
}

func TestCheckDuplicateBlocks_OutOfRangeSkipped(t *testing.T) {
	img := testutil.NewCleanImage()
	img.SetInode(0, ondisk.Inode{LinksCount: 1, DirectPtr: 100})
	img.SetInode(1, ondisk.Inode{LinksCount: 1, DirectPtr: 100})
	ctx := loadContext(t, img)

	collector := &check.Collector{}
	// CheckBadBlocks hasn't run, so the out-of-range pointers are still
	// present; the duplicate checker must skip them rather than treating
	// them as a conflicting claim.
	assert.True(t, check.CheckDuplicateBlocks(ctx, collector))
}
