package report

import (
	"fmt"
	"sort"
	"strings"

	"mdsplit/internal/section"
)

// Summary aggregates statistics over the sections of one parsed document.
type Summary struct {
	TotalSections        int         `json:"total_sections"`
	TotalContentLength   int         `json:"total_content_length"`
	SectionsByLevel      map[int]int `json:"sections_by_level"`
	AverageSectionLength int         `json:"average_section_length"`
}

// Build computes summary statistics for a list of sections.
func Build(sections []section.Section) Summary {
	s := Summary{SectionsByLevel: map[int]int{}}
	if len(sections) == 0 {
		return s
	}

	for _, sec := range sections {
		s.TotalContentLength += len(sec.RawContent)
		s.SectionsByLevel[sec.Level]++
	}
	s.TotalSections = len(sections)
	s.AverageSectionLength = s.TotalContentLength / s.TotalSections
	return s
}

// Render produces a human-readable overview of a document's sections.
func Render(filename string, sections []section.Section) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sections of %s\n", filename))
	sb.WriteString(fmt.Sprintf("Total: %d\n", len(sections)))
	sb.WriteString(strings.Repeat("-", 50) + "\n")

	for i, sec := range sections {
		lines := countContentLines(sec.RawContent)
		sb.WriteString(fmt.Sprintf("%d. Level %d: %s\n", i+1, sec.Level, sec.Title))
		sb.WriteString(fmt.Sprintf("   - lines: %d\n", lines))
		sb.WriteString(fmt.Sprintf("   - chars: %d\n", len(sec.RawContent)))
	}

	summary := Build(sections)
	if summary.TotalSections > 0 {
		sb.WriteString(strings.Repeat("-", 50) + "\n")
		sb.WriteString(fmt.Sprintf("By level: %s\n", formatLevels(summary.SectionsByLevel)))
		sb.WriteString(fmt.Sprintf("Average section length: %d chars\n", summary.AverageSectionLength))
	}

	return sb.String()
}

// countContentLines counts non-blank lines only, so framing whitespace does
// not inflate the numbers.
func countContentLines(content string) int {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return 0
	}
	n := 0
	for _, line := range strings.Split(trimmed, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func formatLevels(byLevel map[int]int) string {
	levels := make([]int, 0, len(byLevel))
	for l := range byLevel {
		levels = append(levels, l)
	}
	sort.Ints(levels)

	parts := make([]string, 0, len(levels))
	for _, l := range levels {
		parts = append(parts, fmt.Sprintf("h%d=%d", l, byLevel[l]))
	}
	return strings.Join(parts, " ")
}
