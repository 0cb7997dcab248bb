package check

import (
	"github.com/dargueta/vsfsck/bitmap"
	"github.com/dargueta/vsfsck/geometry"
)

const stageInodeBitmap = "inode-bitmap"

// ReconcileInodeBitmap implements spec.md §4.8: the stored inode bitmap is
// forced to agree with which inodes are live, using the same symmetric
// rule as ReconcileDataBitmap.
func ReconcileInodeBitmap(ctx *Context, emit Emitter) bool {
	derived := bitmap.New(geometry.InodeCount)
	for i := range ctx.Inodes {
		if ctx.Inodes[i].IsLive() {
			bitmap.Set(derived, i)
		}
	}

	stored := bitmap.Wrap(ctx.InodeBitmap)
	clean := true

	for i := 0; i < geometry.InodeCount; i++ {
		storedSet := bitmap.Test(stored, i)
		derivedSet := bitmap.Test(derived, i)

		switch {
		case storedSet && !derivedSet:
			emitError(emit, stageInodeBitmap, "Inode %d is marked as used in inode bitmap but is not valid", i)
			bitmap.Clear(stored, i)
			clean = false
		case !storedSet && derivedSet:
			emitError(emit, stageInodeBitmap, "Inode %d is valid but not marked as used in inode bitmap", i)
			bitmap.Set(stored, i)
			clean = false
		}
	}

	return clean
}
