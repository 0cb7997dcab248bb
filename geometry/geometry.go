// Package geometry holds the fixed on-disk layout constants for a VSFS
// image. The filesystem's geometry never varies between images — there is
// no superblock field that changes it — so these are plain constants
// rather than a value threaded through the call chain.
package geometry

const (
	// BlockSize is the size, in bytes, of every block in the image.
	BlockSize = 4096
	// TotalBlocks is the total number of blocks in the image.
	TotalBlocks = 64
	// InodeSize is the on-disk stride of a single inode record, in bytes.
	InodeSize = 256
	// InodeCount is the number of inode slots in the inode table.
	InodeCount = 80
	// Magic is the expected value of the superblock's magic field.
	Magic = 0xD34D

	// SuperblockBlockNum is the block holding the superblock.
	SuperblockBlockNum = 0
	// InodeBitmapBlockNum is the block holding the inode allocation bitmap.
	InodeBitmapBlockNum = 1
	// DataBitmapBlockNum is the block holding the data allocation bitmap.
	DataBitmapBlockNum = 2
	// InodeTableStart is the first block of the inode table.
	InodeTableStart = 3
	// InodeTableBlocks is the number of blocks the inode table spans.
	InodeTableBlocks = 5
	// InodesPerBlock is the number of inode records packed into one block.
	InodesPerBlock = BlockSize / InodeSize
	// DataBlockStart is the first block number available for file data;
	// everything below it is reserved metadata.
	DataBlockStart = 8
	// PointersPerIndexBlock is the number of little-endian u32 block
	// numbers packed into one indirect index block.
	PointersPerIndexBlock = BlockSize / 4
)
