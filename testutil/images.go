// Package testutil synthesizes VSFS images entirely in memory for tests,
// the way the teacher repo's testing package decompresses a fixture and
// wraps it with bytesextra.NewReadWriteSeeker so driver code can run
// against it without touching disk.
package testutil

import (
	"github.com/xaionaro-go/bytesextra"

	"github.com/dargueta/vsfsck/geometry"
	"github.com/dargueta/vsfsck/image"
	"github.com/dargueta/vsfsck/ondisk"
)

// Image is a synthetic, in-memory VSFS image. The zero value is not
// useful; build one with NewCleanImage.
type Image struct {
	Bytes []byte
}

// NewCleanImage returns the minimum valid image: a correct superblock,
// both bitmaps zeroed outside the reserved metadata region (which is
// always considered used), and every inode zeroed (free).
func NewCleanImage() *Image {
	img := &Image{Bytes: make([]byte, geometry.TotalBlocks*geometry.BlockSize)}

	img.SetSuperblock(ondisk.Superblock{
		Magic:            geometry.Magic,
		BlockSize:        geometry.BlockSize,
		TotalBlocks:      geometry.TotalBlocks,
		InodeBitmapBlock: geometry.InodeBitmapBlockNum,
		DataBitmapBlock:  geometry.DataBitmapBlockNum,
		InodeTableStart:  geometry.InodeTableStart,
		DataBlockStart:   geometry.DataBlockStart,
		InodeSize:        geometry.InodeSize,
		InodeCount:       geometry.InodeCount,
	})

	dataBitmap := make([]byte, geometry.BlockSize)
	for i := 0; i < geometry.DataBlockStart; i++ {
		dataBitmap[i/8] |= 1 << uint(i%8)
	}
	img.setBlock(geometry.DataBitmapBlockNum, dataBitmap)
	img.setBlock(geometry.InodeBitmapBlockNum, make([]byte, geometry.BlockSize))

	return img
}

func (img *Image) blockOffset(n uint32) int {
	return int(n) * geometry.BlockSize
}

func (img *Image) setBlock(n uint32, data []byte) {
	offset := img.blockOffset(n)
	copy(img.Bytes[offset:offset+geometry.BlockSize], data)
}

// SetSuperblock overwrites the superblock block with sb.
func (img *Image) SetSuperblock(sb ondisk.Superblock) {
	buf := make([]byte, geometry.BlockSize)
	if err := ondisk.EncodeSuperblock(sb, buf); err != nil {
		panic(err)
	}
	img.setBlock(geometry.SuperblockBlockNum, buf)
}

// SetInode overwrites inode k's on-disk record with ino.
func (img *Image) SetInode(k int, ino ondisk.Inode) {
	block, offset := ondisk.InodeBlockAndOffset(k)
	buf := make([]byte, geometry.InodeSize)
	if err := ondisk.EncodeInode(ino, buf); err != nil {
		panic(err)
	}
	tableOffset := img.blockOffset(block) + offset
	copy(img.Bytes[tableOffset:tableOffset+geometry.InodeSize], buf)
}

// SetDataBitmapBit sets or clears bit i of the stored data bitmap.
func (img *Image) SetDataBitmapBit(i int, value bool) {
	img.setBitmapBit(geometry.DataBitmapBlockNum, i, value)
}

// SetInodeBitmapBit sets or clears bit i of the stored inode bitmap.
func (img *Image) SetInodeBitmapBit(i int, value bool) {
	img.setBitmapBit(geometry.InodeBitmapBlockNum, i, value)
}

func (img *Image) setBitmapBit(blockNum uint32, i int, value bool) {
	offset := img.blockOffset(blockNum) + i/8
	mask := byte(1) << uint(i%8)
	if value {
		img.Bytes[offset] |= mask
	} else {
		img.Bytes[offset] &^= mask
	}
}

// SetIndexBlockEntry writes a single little-endian u32 entry into an
// indirect index block, for tests that need single/double/triple indirect
// pointers to resolve to something.
func (img *Image) SetIndexBlockEntry(blockNum uint32, index int, value uint32) {
	offset := img.blockOffset(blockNum) + index*4
	img.Bytes[offset] = byte(value)
	img.Bytes[offset+1] = byte(value >> 8)
	img.Bytes[offset+2] = byte(value >> 16)
	img.Bytes[offset+3] = byte(value >> 24)
}

// Device returns a BlockDevice backed directly by img.Bytes: reads and
// writes through it mutate img.Bytes in place, with no disk I/O.
func (img *Image) Device() *image.BlockDevice {
	return image.NewFromStream(bytesextra.NewReadWriteSeeker(img.Bytes))
}
