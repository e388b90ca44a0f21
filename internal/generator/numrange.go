package generator

import (
	"strconv"
	"strings"
)

// Default bounds for a number placeholder.
const (
	DefaultRangeStart uint64 = 1
	DefaultRangeEnd   uint64 = 999
)

// ParseRange turns the text between XNUM and X into a (start, end) pair.
//
//	""      -> (1, 999)
//	"10"    -> (1, 10)
//	"5,"    -> (5, 999)
//	",5"    -> (1, 5)
//	"1,5"   -> (1, 5)
//
// Only the first comma separates the bounds. Any part that is not a plain
// unsigned integer falls back to its default, so "1,000" is (1, 0).
func ParseRange(spec string) (start, end uint64) {
	before, after, found := strings.Cut(spec, ",")
	if !found {
		return DefaultRangeStart, parseBound(spec, DefaultRangeEnd)
	}
	return parseBound(before, DefaultRangeStart), parseBound(after, DefaultRangeEnd)
}

func parseBound(s string, fallback uint64) uint64 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
