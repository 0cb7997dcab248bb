package ondisk

import (
	"bytes"
	"encoding/binary"

	"github.com/noxer/bytewriter"

	"github.com/dargueta/vsfsck/geometry"
)

// inodeNamedFieldBytes is the size of everything in Inode up to (not
// including) Reserved: fourteen u32 fields.
const inodeNamedFieldBytes = 14 * 4

// InodeReservedSize pads Inode out to exactly geometry.InodeSize bytes so
// inode k lands at table block geometry.InodeTableStart+k/16, offset
// (k%16)*geometry.InodeSize, with no drift between records.
const InodeReservedSize = geometry.InodeSize - inodeNamedFieldBytes

// Inode is the fixed, little-endian layout of one 256-byte inode record.
// None of the POSIX-like metadata fields (Mode, Uid, Gid, Size, the
// timestamps other than Dtime, BlocksCount) are interpreted by the
// checker; they exist only so decode-then-encode round-trips them intact.
type Inode struct {
	Mode  uint32
	Uid   uint32
	Gid   uint32
	Size  uint32
	Atime uint32
	Ctime uint32
	Mtime uint32
	Dtime uint32

	LinksCount  uint32
	BlocksCount uint32

	DirectPtr       uint32
	SingleIndirect  uint32
	DoubleIndirect  uint32
	TripleIndirect  uint32

	Reserved [InodeReservedSize]byte
}

// IsLive reports whether the inode is allocated: it has at least one link
// and has not been marked deleted.
func (ino *Inode) IsLive() bool {
	return ino.LinksCount > 0 && ino.Dtime == 0
}

// PointerSlot names one of the four block-pointer slots an inode carries
// and whether the reachability/reconciliation logic should follow it one
// hop further as an index block of additional pointers.
type PointerSlot struct {
	Name     string
	Traverse bool
}

// PointerSlots is the fixed, ordered set of pointer slots every inode has.
// Checkers iterate this slice instead of hand-rolling four near-identical
// code paths for direct/single/double/triple pointers.
var PointerSlots = []PointerSlot{
	{Name: "direct_ptr", Traverse: false},
	{Name: "single_indirect", Traverse: true},
	{Name: "double_indirect", Traverse: true},
	{Name: "triple_indirect", Traverse: true},
}

// Pointer returns the raw pointer value stored in the given slot (an index
// into PointerSlots).
func (ino *Inode) Pointer(slot int) uint32 {
	switch slot {
	case 0:
		return ino.DirectPtr
	case 1:
		return ino.SingleIndirect
	case 2:
		return ino.DoubleIndirect
	case 3:
		return ino.TripleIndirect
	default:
		panic("ondisk: invalid pointer slot")
	}
}

// SetPointer overwrites the pointer value stored in the given slot.
func (ino *Inode) SetPointer(slot int, value uint32) {
	switch slot {
	case 0:
		ino.DirectPtr = value
	case 1:
		ino.SingleIndirect = value
	case 2:
		ino.DoubleIndirect = value
	case 3:
		ino.TripleIndirect = value
	default:
		panic("ondisk: invalid pointer slot")
	}
}

// InodeBlockAndOffset returns the inode table block and byte offset within
// that block where inode k's record lives.
func InodeBlockAndOffset(k int) (block uint32, offset int) {
	block = geometry.InodeTableStart + uint32(k/geometry.InodesPerBlock)
	offset = (k % geometry.InodesPerBlock) * geometry.InodeSize
	return block, offset
}

// DecodeInode reads one inode-sized slice into an Inode. The reserved
// padding is preserved verbatim for round-tripping.
func DecodeInode(buf []byte) (Inode, error) {
	var ino Inode
	if len(buf) != geometry.InodeSize {
		return ino, errShortBuffer("inode", geometry.InodeSize, len(buf))
	}
	err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &ino)
	return ino, err
}

// EncodeInode writes ino into buf, which must be exactly geometry.InodeSize
// bytes long.
func EncodeInode(ino Inode, buf []byte) error {
	if len(buf) != geometry.InodeSize {
		return errShortBuffer("inode", geometry.InodeSize, len(buf))
	}
	return binary.Write(bytewriter.New(buf), binary.LittleEndian, &ino)
}
