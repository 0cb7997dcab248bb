package check

import (
	"github.com/dargueta/vsfsck/geometry"
	"github.com/dargueta/vsfsck/ondisk"
)

const stageBadBlocks = "bad-blocks"

// inRange reports whether a block number falls within the valid data-block
// range [geometry.DataBlockStart, geometry.TotalBlocks).
func inRange(block uint32) bool {
	return block >= geometry.DataBlockStart && block < geometry.TotalBlocks
}

// CheckBadBlocks implements spec.md §4.5: every non-zero pointer slot of
// every live inode must land in the valid data-block range. Out-of-range
// pointers are cleared. This must run before CheckDuplicateBlocks and both
// bitmap reconcilers so they never observe an out-of-range pointer.
func CheckBadBlocks(ctx *Context, emit Emitter) bool {
	clean := true

	for i := range ctx.Inodes {
		ino := &ctx.Inodes[i]
		if !ino.IsLive() {
			continue
		}

		for slot, info := range ondisk.PointerSlots {
			ptr := ino.Pointer(slot)
			if ptr == 0 {
				continue
			}
			if !inRange(ptr) {
				emitError(emit, stageBadBlocks,
					"Inode %d has bad %s pointer: %d (valid range: %d-%d)",
					i, info.Name, ptr, geometry.DataBlockStart, geometry.TotalBlocks-1)
				ino.SetPointer(slot, 0)
				clean = false
			}
		}
	}

	return clean
}
