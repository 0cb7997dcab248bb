package ondisk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dargueta/vsfsck/geometry"
	"github.com/dargueta/vsfsck/ondisk"
)

func validSuperblock() ondisk.Superblock {
	return ondisk.Superblock{
		Magic:            geometry.Magic,
		BlockSize:        geometry.BlockSize,
		TotalBlocks:      geometry.TotalBlocks,
		InodeBitmapBlock: geometry.InodeBitmapBlockNum,
		DataBitmapBlock:  geometry.DataBitmapBlockNum,
		InodeTableStart:  geometry.InodeTableStart,
		DataBlockStart:   geometry.DataBlockStart,
		InodeSize:        geometry.InodeSize,
		InodeCount:       geometry.InodeCount,
	}
}

func TestSuperblock_RoundTrip(t *testing.T) {
	sb := validSuperblock()
	copy(sb.Reserved[:], []byte("whatever junk happened to be here"))

	buf := make([]byte, geometry.BlockSize)
	require.NoError(t, ondisk.EncodeSuperblock(sb, buf))

	decoded, err := ondisk.DecodeSuperblock(buf)
	require.NoError(t, err)
	require.Equal(t, sb, decoded)
}

func TestSuperblock_ExactlyOneBlock(t *testing.T) {
	require.Equal(t, geometry.BlockSize, 2+8*4+ondisk.SuperblockReservedSize)
}

func TestDecodeSuperblock_RejectsWrongSize(t *testing.T) {
	_, err := ondisk.DecodeSuperblock(make([]byte, 10))
	require.Error(t, err)
}

func TestEncodeSuperblock_RejectsWrongSize(t *testing.T) {
	err := ondisk.EncodeSuperblock(validSuperblock(), make([]byte, 10))
	require.Error(t, err)
}
