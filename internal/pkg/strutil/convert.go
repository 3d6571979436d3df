// Package strutil provides small string conversion helpers for parsing
// untrusted query parameters.
package strutil

import "strconv"

// ConvertToInt parses s as an int, returning 0 when it is not a number.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToInt64 parses s as an int64, returning 0 when it is not a number.
func ConvertToInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
