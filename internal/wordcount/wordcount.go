// Package wordcount counts words the way the save path and the live session
// display both need to: whitespace-delimited tokens, nothing smarter.
package wordcount

import "strings"

// Count returns the number of whitespace-separated words in s.
// An empty or all-whitespace string counts zero words.
func Count(s string) int {
	return len(strings.Fields(s))
}
