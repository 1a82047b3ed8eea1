//go:build !windows

package report

import "github.com/google/renameio/v2"

func writeFileAtomic(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0644)
}
