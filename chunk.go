package urlsum

import (
	"iter"
	"slices"
	"strings"
)

// DefaultChunkSize is the default chunk size threshold.
const DefaultChunkSize = 1024

// Chunks returns the words of text grouped into chunks. Each word costs its
// length plus one for the separator. A chunk closes as soon as its running
// cost reaches size, so it may overshoot size by at most one word. The final
// chunk may be smaller than size.
//
// The sequence is lazy and may be ranged over more than once.
func Chunks(text string, size int) iter.Seq[string] {
	return func(yield func(string) bool) {
		var chunk []string
		length := 0

		for word := range strings.FieldsSeq(text) {
			chunk = append(chunk, word)
			length += len(word) + 1
			if length >= size {
				if !yield(strings.Join(chunk, " ")) {
					return
				}
				chunk = chunk[:0]
				length = 0
			}
		}

		if len(chunk) > 0 {
			yield(strings.Join(chunk, " "))
		}
	}
}

// SplitChunks returns all chunks of text as a slice.
func SplitChunks(text string, size int) []string {
	return slices.Collect(Chunks(text, size))
}
