package section

import "strings"

// scanLines is the fallback splitter: a regex scan over physical lines. It
// relies only on string splitting and pattern matching, so it cannot fail.
// Unlike the block tokenizer it has no notion of fenced code blocks, which
// means a '#' line inside a fence is still treated as a heading here.
func scanLines(content string) []Section {
	var sections []Section
	lines := strings.Split(content, "\n")

	// Everything before the first heading line is introduction material.
	firstHeading := -1
	for i, line := range lines {
		if headingPattern.MatchString(strings.TrimSpace(line)) {
			firstHeading = i
			break
		}
	}

	introLines := lines
	if firstHeading >= 0 {
		introLines = lines[:firstHeading]
	}
	if intro := strings.TrimSpace(strings.Join(introLines, "\n")); intro != "" {
		sections = append(sections, Section{
			Level:      IntroductionLevel,
			Title:      IntroductionTitle,
			Content:    intro,
			RawContent: intro,
		})
	}
	if firstHeading < 0 {
		return sections
	}

	var current *Section
	var buffer []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(buffer, "\n"))
		current.RawContent = strings.TrimSpace(strings.Join(buffer[1:], "\n"))
		sections = append(sections, *current)
	}

	for _, line := range lines[firstHeading:] {
		if m := headingPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			flush()
			current = &Section{
				Level: clampLevel(len(m[1])),
				Title: strings.TrimSpace(m[2]),
			}
			buffer = []string{line}
			continue
		}
		if current != nil {
			buffer = append(buffer, line)
		}
	}
	flush()

	return sections
}

func clampLevel(n int) int {
	if n < 1 {
		return 1
	}
	if n > 6 {
		return 6
	}
	return n
}
