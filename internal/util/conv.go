package util

import (
	"strconv"
	"time"
)

// ParseUintOrZero converts a path parameter to uint, returning 0 on failure.
func ParseUintOrZero(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParseDate parses a YYYY-MM-DD value.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
