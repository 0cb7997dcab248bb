package check

import (
	"github.com/dargueta/vsfsck/geometry"
)

const stageSuperblock = "superblock"

// ValidateSuperblock implements spec.md §4.4: every field is checked
// against the known-good geometry constants. Any mismatch is overwritten
// in place with the expected value and reported; the field-by-field order
// matches the original check_and_fix_fs_image so diagnostic ordering is
// unchanged when both implementations are run against the same corruption.
func ValidateSuperblock(ctx *Context, emit Emitter) bool {
	sb := &ctx.Superblock
	valid := true

	if sb.Magic != geometry.Magic {
		emitError(emit, stageSuperblock, "Invalid magic number: 0x%X (expected: 0x%X)", sb.Magic, uint16(geometry.Magic))
		sb.Magic = geometry.Magic
		valid = false
	}

	fields := []struct {
		name  string
		value *uint32
		want  uint32
	}{
		{"block size", &sb.BlockSize, geometry.BlockSize},
		{"total blocks", &sb.TotalBlocks, geometry.TotalBlocks},
		{"inode bitmap block", &sb.InodeBitmapBlock, geometry.InodeBitmapBlockNum},
		{"data bitmap block", &sb.DataBitmapBlock, geometry.DataBitmapBlockNum},
		{"inode table start", &sb.InodeTableStart, geometry.InodeTableStart},
		{"data block start", &sb.DataBlockStart, geometry.DataBlockStart},
		{"inode size", &sb.InodeSize, geometry.InodeSize},
		{"inode count", &sb.InodeCount, geometry.InodeCount},
	}

	for _, f := range fields {
		if *f.value != f.want {
			emitError(emit, stageSuperblock, "Invalid %s: %d (expected: %d)", f.name, *f.value, f.want)
			*f.value = f.want
			valid = false
		}
	}

	return valid
}
