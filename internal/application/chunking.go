package application

import (
	"strings"
	"unicode/utf8"
)

const (
	suggestionChunkSize    = 500
	suggestionChunkOverlap = 50
	coursePrefix           = "CURSO DISPONÍVEL: "
)

// CourseLines renders course names as the lines fed to the index.
func CourseLines(names []string) []string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		lines = append(lines, coursePrefix+name)
	}
	return lines
}

// ChunkLines packs lines into newline-joined chunks of at most size runes.
// Each chunk repeats the trailing lines of the previous one that fit in
// overlap runes. A single line longer than size becomes its own chunk.
func ChunkLines(lines []string, size int, overlap int) []string {
	var chunks []string
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, strings.Join(current, "\n"))

		var carried []string
		carriedLen := 0
		for i := len(current) - 1; i >= 0; i-- {
			n := utf8.RuneCountInString(current[i])
			if carried != nil {
				n++
			}
			if carriedLen+n > overlap {
				break
			}
			carried = append([]string{current[i]}, carried...)
			carriedLen += n
		}
		current = carried
		currentLen = carriedLen
	}

	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		added := n
		if len(current) > 0 {
			added++
		}
		if currentLen+added > size && len(current) > 0 {
			flush()
			added = n
			if len(current) > 0 {
				added++
			}
			if currentLen+added > size {
				current, currentLen = nil, 0
				added = n
			}
		}
		current = append(current, line)
		currentLen += added
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}
	return chunks
}
