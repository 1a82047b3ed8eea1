//go:build !linux && !darwin && !windows

package filesystem

import (
	"os"
	"time"
)

// getCreationTime falls back to the modification time where no birth time is exposed
func getCreationTime(_ string, info os.FileInfo) time.Time {
	return info.ModTime()
}
