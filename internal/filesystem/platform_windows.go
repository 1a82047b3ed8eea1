//go:build windows

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// getCreationTime gets the creation time from FileInfo (Windows)
func getCreationTime(_ string, info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(0, stat.CreationTime.Nanoseconds())
}
