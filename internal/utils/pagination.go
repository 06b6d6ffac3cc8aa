// Package utils provides small, layer-independent helpers.
package utils

import "strconv"

// AtoiDefault parses s as an int, falling back to def when s is empty or
// not a valid integer. The admin listing uses it for the page and page_size
// query parameters, where a malformed value should mean "use the default"
// rather than an error.
//
//	page := utils.AtoiDefault(c.Query("page"), 1)
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
