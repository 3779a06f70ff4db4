package filesystem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DiskStats holds disk usage information. It is meant to be passed by value.
type DiskStats struct {
	TotalSize uint64
	FreeSpace uint64
}

// GetDiskUsage gets the [DiskStats] of the file system containing a path.
func (f *Handler) GetDiskUsage(path string) (DiskStats, error) {
	var stat unix.Statfs_t
	if err := f.unixHandler.Statfs(path, &stat); err != nil {
		return DiskStats{}, fmt.Errorf("(fs-diskstats) failed to statfs: %w", err)
	}

	stats := DiskStats{
		TotalSize: stat.Blocks * handleSize(stat.Bsize),
		FreeSpace: stat.Bavail * handleSize(stat.Bsize),
	}

	if stats.TotalSize == 0 {
		return DiskStats{}, fmt.Errorf("(fs-diskstats) %w: total size is 0", ErrInvalidStats)
	}

	return stats, nil
}

// HasEnoughFreeSpace is a helper method that allows checking if the file
// system containing a path can house a certain fileSize without exceeding a
// certain minFree threshold.
func (f *Handler) HasEnoughFreeSpace(path string, minFree uint64, fileSize uint64) (bool, error) {
	stats, err := f.GetDiskUsage(path)
	if err != nil {
		return false, fmt.Errorf("(fs-enoughspace) failed to get usage: %w", err)
	}

	requiredFree := minFree
	if minFree <= fileSize {
		requiredFree = fileSize
	}

	if stats.FreeSpace > requiredFree {
		return true, nil
	}

	return false, nil
}

// handleSize converts an int64 block size to a uint64 block size (with sizes
// < 0 becoming 0).
func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}
