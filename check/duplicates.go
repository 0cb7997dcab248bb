package check

import (
	"github.com/dargueta/vsfsck/ondisk"
)

const stageDuplicates = "duplicates"

// CheckDuplicateBlocks implements spec.md §4.6: a single pass over live
// inodes, ascending inode index then PointerSlots order, records the first
// claimant of each block. Every later reference to an already-claimed
// block is cleared. Pointers that are zero or out of range are skipped —
// CheckBadBlocks is assumed to have already run and cleared those. Only
// top-level pointer values are considered; pointees reached through an
// index block are never entered into the ownership map, a consequence of
// the single-hop traversal policy (spec.md §9).
func CheckDuplicateBlocks(ctx *Context, emit Emitter) bool {
	clean := true
	owner := make(map[uint32]int)

	for i := range ctx.Inodes {
		ino := &ctx.Inodes[i]
		if !ino.IsLive() {
			continue
		}

		for slot, info := range ondisk.PointerSlots {
			ptr := ino.Pointer(slot)
			if ptr == 0 || !inRange(ptr) {
				continue
			}

			if first, claimed := owner[ptr]; claimed {
				emitError(emit, stageDuplicates,
					"Block %d is referenced by both inode %d and inode %d (%s)",
					ptr, first, i, info.Name)
				ino.SetPointer(slot, 0)
				clean = false
				continue
			}

			owner[ptr] = i
		}
	}

	return clean
}
