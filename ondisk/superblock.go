package ondisk

import (
	"bytes"
	"encoding/binary"

	"github.com/noxer/bytewriter"

	"github.com/dargueta/vsfsck/geometry"
)

// superblockNamedFieldBytes is the size of everything in Superblock up to
// (not including) Reserved: one u16 (Magic) plus eight u32 fields.
const superblockNamedFieldBytes = 2 + 8*4

// SuperblockReservedSize pads Superblock out to exactly one block. The
// named fields sum to 34 bytes; the rest of the block is reserved and
// ignored, per spec.
const SuperblockReservedSize = geometry.BlockSize - superblockNamedFieldBytes

// Superblock is the fixed, little-endian layout of block 0.
type Superblock struct {
	Magic            uint16
	BlockSize        uint32
	TotalBlocks      uint32
	InodeBitmapBlock uint32
	DataBitmapBlock  uint32
	InodeTableStart  uint32
	DataBlockStart   uint32
	InodeSize        uint32
	InodeCount       uint32
	Reserved         [SuperblockReservedSize]byte
}

// DecodeSuperblock reads a block-sized buffer into a Superblock. The
// reserved padding is preserved verbatim so a later EncodeSuperblock call
// round-trips any bytes this package never interprets.
func DecodeSuperblock(buf []byte) (Superblock, error) {
	var sb Superblock
	if len(buf) != geometry.BlockSize {
		return sb, errShortBuffer("superblock", geometry.BlockSize, len(buf))
	}
	err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &sb)
	return sb, err
}

// EncodeSuperblock writes sb into buf, which must be exactly one block
// long.
func EncodeSuperblock(sb Superblock, buf []byte) error {
	if len(buf) != geometry.BlockSize {
		return errShortBuffer("superblock", geometry.BlockSize, len(buf))
	}
	return binary.Write(bytewriter.New(buf), binary.LittleEndian, &sb)
}
