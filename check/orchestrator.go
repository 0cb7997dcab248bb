package check

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/dargueta/vsfsck/image"
)

// Result is the outcome of one Run: which stages found (and fixed)
// corruption, and the full diagnostic transcript.
type Result struct {
	SuperblockValid      bool
	NoBadBlocks          bool
	NoDuplicates         bool
	DataBitmapConsistent bool
	InodeBitmapConsistent bool
	Diagnostics          []Diagnostic
}

// Clean reports whether every stage found the image already consistent —
// spec.md §4.9 step 8's "No errors found" branch.
func (r Result) Clean() bool {
	return r.SuperblockValid &&
		r.NoBadBlocks &&
		r.NoDuplicates &&
		r.DataBitmapConsistent &&
		r.InodeBitmapConsistent
}

// Run implements the fixed nine-step orchestration in spec.md §4.9: open
// the image, load all metadata once, run the five checks in order,
// conditionally flush each region, close the image. emit may be nil, in
// which case diagnostics are only available via the returned Result.
func Run(path string, emit Emitter) (result Result, err error) {
	dev, openErr := image.Open(path)
	if openErr != nil {
		return Result{}, openErr
	}
	defer func() {
		if closeErr := dev.Close(); closeErr != nil {
			err = multierror.Append(err, fmt.Errorf("closing image: %w", closeErr)).ErrorOrNil()
		}
	}()

	tee := teeEmitter{inner: emit, items: &result.Diagnostics}

	ctx := NewContext(dev)
	if err = ctx.Load(); err != nil {
		return result, err
	}

	emitInfo(tee, stageSuperblock, "Validating superblock...")
	result.SuperblockValid = ValidateSuperblock(ctx, tee)
	if !result.SuperblockValid {
		emitInfo(tee, stageSuperblock, "Fixed superblock issues")
		if err = ctx.FlushSuperblock(); err != nil {
			return result, err
		}
	}

	emitInfo(tee, stageBadBlocks, "Checking for bad blocks...")
	result.NoBadBlocks = CheckBadBlocks(ctx, tee)
	if !result.NoBadBlocks {
		emitInfo(tee, stageBadBlocks, "Fixed bad block issues")
		if err = ctx.FlushInodeTable(); err != nil {
			return result, err
		}
	}

	emitInfo(tee, stageDuplicates, "Checking for duplicate blocks...")
	result.NoDuplicates = CheckDuplicateBlocks(ctx, tee)
	if !result.NoDuplicates {
		emitInfo(tee, stageDuplicates, "Fixed duplicate block issues")
		if err = ctx.FlushInodeTable(); err != nil {
			return result, err
		}
	}

	emitInfo(tee, stageDataBitmap, "Checking data bitmap consistency...")
	result.DataBitmapConsistent, err = ReconcileDataBitmap(ctx, tee)
	if err != nil {
		return result, err
	}
	if !result.DataBitmapConsistent {
		emitInfo(tee, stageDataBitmap, "Fixed data bitmap inconsistencies")
		if err = ctx.FlushDataBitmap(); err != nil {
			return result, err
		}
	}

	emitInfo(tee, stageInodeBitmap, "Checking inode bitmap consistency...")
	result.InodeBitmapConsistent = ReconcileInodeBitmap(ctx, tee)
	if !result.InodeBitmapConsistent {
		emitInfo(tee, stageInodeBitmap, "Fixed inode bitmap inconsistencies")
		if err = ctx.FlushInodeBitmap(); err != nil {
			return result, err
		}
	}

	if result.Clean() {
		emitInfo(tee, "summary", "No errors found or all errors have been fixed")
	} else {
		emitInfo(tee, "summary", "All errors have been fixed. Re-run the checker to verify.")
	}

	return result, nil
}
