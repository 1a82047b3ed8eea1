//go:build windows

package report

const lineSeparator = "\r\n"
