// Package check implements the five VSFS consistency checks and the
// orchestrator that runs them in a fixed order against a single image.
package check

import (
	"github.com/dargueta/vsfsck/geometry"
	"github.com/dargueta/vsfsck/image"
	"github.com/dargueta/vsfsck/ondisk"
)

// Context aggregates the in-memory state every check reads and possibly
// mutates: the superblock, both bitmap buffers, the full inode table, and
// the open device they're loaded from and flushed back to. It exists only
// for the duration of one run (see spec.md §3 Lifecycle) and replaces what
// the original C source kept as file-scope globals.
type Context struct {
	Device *image.BlockDevice

	Superblock ondisk.Superblock
	// InodeBitmap and DataBitmap are the raw, block-sized buffers read
	// from disk. bitmap.Wrap(buf) reinterprets them in place so checker
	// mutations land directly here, ready to flush.
	InodeBitmap []byte
	DataBitmap  []byte
	Inodes      [geometry.InodeCount]ondisk.Inode
}

// NewContext creates an empty Context bound to dev. Call Load before
// running any checks.
func NewContext(dev *image.BlockDevice) *Context {
	return &Context{
		Device:      dev,
		InodeBitmap: make([]byte, geometry.BlockSize),
		DataBitmap:  make([]byte, geometry.BlockSize),
	}
}

// Load reads the superblock, both bitmaps, and every inode into memory.
func (ctx *Context) Load() error {
	sbBuf := make([]byte, geometry.BlockSize)
	if err := ctx.Device.ReadBlock(geometry.SuperblockBlockNum, sbBuf); err != nil {
		return err
	}
	sb, err := ondisk.DecodeSuperblock(sbBuf)
	if err != nil {
		return err
	}
	ctx.Superblock = sb

	if err := ctx.Device.ReadBlock(geometry.InodeBitmapBlockNum, ctx.InodeBitmap); err != nil {
		return err
	}
	if err := ctx.Device.ReadBlock(geometry.DataBitmapBlockNum, ctx.DataBitmap); err != nil {
		return err
	}

	tableBuf := make([]byte, geometry.BlockSize)
	for i := 0; i < geometry.InodeTableBlocks; i++ {
		if err := ctx.Device.ReadBlock(geometry.InodeTableStart+uint32(i), tableBuf); err != nil {
			return err
		}
		for j := 0; j < geometry.InodesPerBlock; j++ {
			k := i*geometry.InodesPerBlock + j
			if k >= geometry.InodeCount {
				break
			}
			offset := j * geometry.InodeSize
			ino, err := ondisk.DecodeInode(tableBuf[offset : offset+geometry.InodeSize])
			if err != nil {
				return err
			}
			ctx.Inodes[k] = ino
		}
	}

	return nil
}

// FlushSuperblock writes the in-memory superblock back to block 0.
func (ctx *Context) FlushSuperblock() error {
	buf := make([]byte, geometry.BlockSize)
	if err := ondisk.EncodeSuperblock(ctx.Superblock, buf); err != nil {
		return err
	}
	return ctx.Device.WriteBlock(geometry.SuperblockBlockNum, buf)
}

// FlushInodeTable writes every inode back to its table block.
func (ctx *Context) FlushInodeTable() error {
	buf := make([]byte, geometry.BlockSize)
	for i := 0; i < geometry.InodeTableBlocks; i++ {
		for j := 0; j < geometry.InodesPerBlock; j++ {
			k := i*geometry.InodesPerBlock + j
			if k >= geometry.InodeCount {
				break
			}
			offset := j * geometry.InodeSize
			if err := ondisk.EncodeInode(ctx.Inodes[k], buf[offset:offset+geometry.InodeSize]); err != nil {
				return err
			}
		}
		if err := ctx.Device.WriteBlock(geometry.InodeTableStart+uint32(i), buf); err != nil {
			return err
		}
	}
	return nil
}

// FlushInodeBitmap writes the in-memory inode bitmap back to disk.
func (ctx *Context) FlushInodeBitmap() error {
	return ctx.Device.WriteBlock(geometry.InodeBitmapBlockNum, ctx.InodeBitmap)
}

// FlushDataBitmap writes the in-memory data bitmap back to disk.
func (ctx *Context) FlushDataBitmap() error {
	return ctx.Device.WriteBlock(geometry.DataBitmapBlockNum, ctx.DataBitmap)
}

// ReadIndexBlock reads block n and decodes it as an array of little-endian
// u32 block pointers, geometry.PointersPerIndexBlock entries long. Used by
// the data-bitmap reconciler to follow one hop through an indirect block.
func (ctx *Context) ReadIndexBlock(n uint32) ([]uint32, error) {
	buf := make([]byte, geometry.BlockSize)
	if err := ctx.Device.ReadBlock(n, buf); err != nil {
		return nil, err
	}
	entries := make([]uint32, geometry.PointersPerIndexBlock)
	for i := range entries {
		entries[i] = uint32(buf[i*4]) | uint32(buf[i*4+1])<<8 | uint32(buf[i*4+2])<<16 | uint32(buf[i*4+3])<<24
	}
	return entries, nil
}
