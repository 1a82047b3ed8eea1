//go:build darwin

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// getCreationTime gets the birth time from FileInfo (macOS)
func getCreationTime(_ string, info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
}
