package urlsum

import "strings"

// FormatSummary re-punctuates an aggregate summary for display.
//
// The summary is split on ". " into points. Each point is trimmed and
// terminated with ". ", and points mentioning "for example" also end the
// line. Trailing spaces and periods are then dropped and a single period
// is appended. The split is purely textual: abbreviations and decimals
// split too.
func FormatSummary(summary string) string {
	var sb strings.Builder
	for _, point := range SummaryPoints(summary) {
		point = strings.TrimSpace(point)
		if strings.Contains(strings.ToLower(point), "for example") {
			sb.WriteString(point + ". \n")
		} else {
			sb.WriteString(point + ". ")
		}
	}
	return strings.TrimRight(sb.String(), " .") + "."
}

// SummaryPoints splits an aggregate summary on ". ". k separators yield
// k+1 points.
func SummaryPoints(summary string) []string {
	return strings.Split(summary, ". ")
}
