package check

import (
	"github.com/dargueta/vsfsck/bitmap"
	"github.com/dargueta/vsfsck/geometry"
	"github.com/dargueta/vsfsck/ondisk"
)

const stageDataBitmap = "data-bitmap"

// deriveReachableBlocks computes the set of blocks reachable from some live
// inode: the reserved metadata region, every in-range top-level pointer,
// and — for the three indirect slots — the in-range entries of the single
// index block each one points to. Only one hop is traversed for
// double/triple indirect pointers; see spec.md §9.
func deriveReachableBlocks(ctx *Context) (bitmap.Bitmap, error) {
	derived := bitmap.New(geometry.TotalBlocks)

	for i := 0; i < geometry.DataBlockStart; i++ {
		bitmap.Set(derived, i)
	}

	for idx := range ctx.Inodes {
		ino := &ctx.Inodes[idx]
		if !ino.IsLive() {
			continue
		}

		for slot, info := range ondisk.PointerSlots {
			ptr := ino.Pointer(slot)
			if ptr == 0 || !inRange(ptr) {
				continue
			}
			bitmap.Set(derived, int(ptr))

			if !info.Traverse {
				continue
			}

			entries, err := ctx.ReadIndexBlock(ptr)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if e != 0 && inRange(e) {
					bitmap.Set(derived, int(e))
				}
			}
		}
	}

	return derived, nil
}

// ReconcileDataBitmap implements spec.md §4.7: the stored data bitmap is
// forced to agree with the derived reachability set over
// [geometry.DataBlockStart, geometry.TotalBlocks). Bits 0-7 (the reserved
// region) are never compared or repaired, per the Open Question in
// spec.md §9.
func ReconcileDataBitmap(ctx *Context, emit Emitter) (bool, error) {
	derived, err := deriveReachableBlocks(ctx)
	if err != nil {
		return false, err
	}

	stored := bitmap.Wrap(ctx.DataBitmap)
	clean := true

	for i := geometry.DataBlockStart; i < geometry.TotalBlocks; i++ {
		storedSet := bitmap.Test(stored, i)
		derivedSet := bitmap.Test(derived, i)

		switch {
		case storedSet && !derivedSet:
			emitError(emit, stageDataBitmap, "Block %d is marked as used in data bitmap but not referenced by any inode", i)
			bitmap.Clear(stored, i)
			clean = false
		case !storedSet && derivedSet:
			emitError(emit, stageDataBitmap, "Block %d is referenced by an inode but not marked as used in data bitmap", i)
			bitmap.Set(stored, i)
			clean = false
		}
	}

	return clean, nil
}
