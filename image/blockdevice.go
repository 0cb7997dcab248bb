// Package image provides positioned block I/O against a VSFS image. It
// knows nothing about superblocks, bitmaps, or inodes — only fixed-size
// reads and writes at block-aligned offsets.
package image

import (
	"io"
	"os"

	"github.com/dargueta/vsfsck/errors"
	"github.com/dargueta/vsfsck/geometry"
)

// Stream is the minimal interface BlockDevice needs from its backing
// storage. *os.File satisfies it directly; in tests, an in-memory seeker
// such as github.com/xaionaro-go/bytesextra's ReadWriteSeeker does too,
// letting the same BlockDevice code run against a synthetic image with no
// disk I/O at all.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
}

// BlockDevice is a read-write handle to a VSFS image, opened without
// truncation or creation: the image must already exist and already be the
// right size.
type BlockDevice struct {
	stream Stream
	closer io.Closer
}

// Open opens the image at path for reading and writing in place. It does
// not create or truncate the file.
func Open(path string) (*BlockDevice, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.ErrOpenFailed.WrapError(err)
	}
	return &BlockDevice{stream: f, closer: f}, nil
}

// NewFromStream builds a BlockDevice directly over an already-open stream,
// with no underlying descriptor to close. Intended for tests that hold a
// synthetic image entirely in memory.
func NewFromStream(s Stream) *BlockDevice {
	return &BlockDevice{stream: s}
}

// ReadBlock fills buf, which must be exactly geometry.BlockSize bytes long,
// with the contents of block n. A short read is fatal.
func (d *BlockDevice) ReadBlock(n uint32, buf []byte) error {
	if len(buf) != geometry.BlockSize {
		return errors.ErrShortIO.WithMessage("buffer is not one block long")
	}

	if _, err := d.stream.Seek(int64(n)*geometry.BlockSize, io.SeekStart); err != nil {
		return errors.ErrShortIO.WrapError(err)
	}
	read, err := io.ReadFull(d.stream, buf)
	if err != nil {
		return errors.ErrShortIO.WrapError(err)
	}
	if read != geometry.BlockSize {
		return errors.ErrShortIO.WithMessage("fewer bytes read than requested")
	}
	return nil
}

// WriteBlock writes buf, which must be exactly geometry.BlockSize bytes
// long, to block n. A short write is fatal.
func (d *BlockDevice) WriteBlock(n uint32, buf []byte) error {
	if len(buf) != geometry.BlockSize {
		return errors.ErrShortIO.WithMessage("buffer is not one block long")
	}

	if _, err := d.stream.Seek(int64(n)*geometry.BlockSize, io.SeekStart); err != nil {
		return errors.ErrShortIO.WrapError(err)
	}
	written, err := d.stream.Write(buf)
	if err != nil {
		return errors.ErrShortIO.WrapError(err)
	}
	if written != geometry.BlockSize {
		return errors.ErrShortIO.WithMessage("fewer bytes written than requested")
	}
	return nil
}

// Close releases the underlying descriptor, if there is one.
func (d *BlockDevice) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}
