// Package vsfsck is the public entry point for checking and repairing a
// VSFS disk image: a small, fixed-geometry filesystem with a superblock,
// two allocation bitmaps, and a flat inode table (spec.md §3). Run opens
// the image, runs the five consistency checks in their required order,
// and repairs anything it can fix in place.
package vsfsck

import (
	"io"

	"github.com/dargueta/vsfsck/check"
)

// Run checks and repairs the image at path, streaming a plain-text
// diagnostic transcript to w (if non-nil) as each event occurs.
func Run(path string, w io.Writer) (check.Result, error) {
	var emit check.Emitter
	if w != nil {
		emit = check.WriterEmitter{W: w}
	}
	return check.Run(path, emit)
}
