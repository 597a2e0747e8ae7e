package rag

import (
	"strings"
	"unicode/utf8"
)

// Chunker splits study material into overlapping word chunks.
// Sizes are counted in characters, not bytes, so Devanagari text chunks like Latin text.
type Chunker struct {
	chunkSize    int
	chunkOverlap int
}

// NewChunker creates a new chunker with the given size and overlap
func NewChunker(chunkSize, chunkOverlap int) *Chunker {
	return &Chunker{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// ChunkText splits text into chunks of at most chunkSize characters.
// Consecutive chunks share up to chunkOverlap characters of whole words, fewer
// when the carried words would push the next chunk past chunkSize.
// A single word longer than chunkSize becomes a chunk of its own.
func (c *Chunker) ChunkText(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{}
	}

	chunks := []string{}
	current := []string{}
	currentSize := 0

	for _, word := range words {
		wordSize := utf8.RuneCountInString(word) + 1 // +1 for space

		if currentSize+wordSize > c.chunkSize && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))

			overlap := c.getOverlapWords(current)
			for len(overlap) > 0 && c.calculateSize(overlap)+1+wordSize > c.chunkSize {
				overlap = overlap[1:]
			}
			current = append([]string{}, overlap...)
			currentSize = c.calculateSize(overlap)
			if currentSize > 0 {
				currentSize++ // separator before the next word
			}
		}

		current = append(current, word)
		currentSize += wordSize
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}

// getOverlapWords returns the trailing words of a finished chunk that fit into
// chunkOverlap characters. The first word is never carried over.
func (c *Chunker) getOverlapWords(words []string) []string {
	if c.chunkOverlap <= 0 || len(words) < 2 {
		return []string{}
	}

	start := len(words)
	size := 0
	for i := len(words) - 1; i > 0; i-- {
		wordSize := utf8.RuneCountInString(words[i])
		if start < len(words) {
			wordSize++ // separator
		}
		if size+wordSize > c.chunkOverlap {
			break
		}
		size += wordSize
		start = i
	}

	return words[start:]
}

// calculateSize returns the character count of words joined by single spaces
func (c *Chunker) calculateSize(words []string) int {
	size := 0
	for _, word := range words {
		size += utf8.RuneCountInString(word) + 1
	}
	if size > 0 {
		size--
	}
	return size
}
