// Separator detection for CSV samples.
package csvtable

import (
	"strings"
)

// candidateSeparators are checked by DetectSeparator, most common first.
var candidateSeparators = []string{",", "\t", ";", "|"}

// DetectSeparator guesses the field separator of a CSV sample by scoring
// each candidate (comma, tab, semicolon, pipe) on how many fields it yields
// and how consistent that count is across lines. Falls back to "," when the
// sample gives no signal. For best results provide at least 2-3 lines.
func DetectSeparator(sample string) string {
	scores := make(map[string]int, len(candidateSeparators))

	lines := strings.Split(sample, "\n")
	for _, sep := range candidateSeparators {
		counts := make([]int, 0, len(lines))
		for _, line := range lines {
			line = strings.TrimSuffix(line, "\r")
			if line == "" {
				continue
			}
			counts = append(counts, countSeparator(line, sep))
		}
		if len(counts) == 0 || counts[0] == 0 {
			continue
		}

		consistent := true
		for _, c := range counts[1:] {
			if c != counts[0] {
				consistent = false
				break
			}
		}
		if consistent {
			// Consistency across lines is a much stronger signal than
			// raw occurrence count.
			scores[sep] = counts[0] * 10
		} else {
			scores[sep] = counts[0]
		}
	}

	best, bestScore := DefaultSeparator, 0
	for _, sep := range candidateSeparators {
		if scores[sep] > bestScore {
			best, bestScore = sep, scores[sep]
		}
	}
	return best
}

// countSeparator counts separator occurrences outside quoted sections.
func countSeparator(line, sep string) int {
	count := 0
	inQuotes := false

	i := 0
	for i < len(line) {
		if line[i] == '"' {
			inQuotes = !inQuotes
			i++
			continue
		}
		if !inQuotes && strings.HasPrefix(line[i:], sep) {
			count++
			i += len(sep)
			continue
		}
		i++
	}
	return count
}
