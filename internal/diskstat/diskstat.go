// Package diskstat reports usage statistics of the volumes that handled
// files reside on.
package diskstat

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// unixStatfsProvider defines Statfs methods needed for volume usage checking.
type unixStatfsProvider interface {
	Statfs(path string, buf *unix.Statfs_t) error
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Statfs wraps around [unix.Statfs].
func (*Unix) Statfs(path string, buf *unix.Statfs_t) error {
	return unix.Statfs(path, buf)
}

// Stats holds volume usage information. It is meant to be passed by value.
type Stats struct {
	TotalSize uint64
	FreeSpace uint64
}

// Handler provides volume usage statistics.
type Handler struct {
	UnixOps unixStatfsProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(unixOps unixStatfsProvider) *Handler {
	return &Handler{
		UnixOps: unixOps,
	}
}

// Usage gets the [Stats] of the volume holding path from the OS.
func (h *Handler) Usage(path string) (Stats, error) {
	var stat unix.Statfs_t
	if err := h.UnixOps.Statfs(path, &stat); err != nil {
		return Stats{}, fmt.Errorf("(diskstat) failed to statfs: %w", err)
	}

	stats := Stats{
		TotalSize: stat.Blocks * blockSize(stat.Bsize),
		FreeSpace: stat.Bavail * blockSize(stat.Bsize),
	}

	return stats, nil
}

// HasEnoughFreeSpace is a helper method that allows checking if the volume
// holding path can house fileSize additional bytes.
func (h *Handler) HasEnoughFreeSpace(path string, fileSize uint64) (bool, error) {
	stats, err := h.Usage(path)
	if err != nil {
		return false, fmt.Errorf("(diskstat-efree) failed to get usage: %w", err)
	}

	if stats.FreeSpace > fileSize {
		return true, nil
	}

	return false, nil
}

// blockSize converts a reported block size for calculation, with negative
// sizes counting as zero.
func blockSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}
