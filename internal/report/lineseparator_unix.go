//go:build !windows

package report

const lineSeparator = "\n"
