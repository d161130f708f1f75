package section

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headingPattern matches an ATX heading line: 1-6 '#' characters, at least
// one whitespace character, then non-empty heading text. Setext underline
// headings are not supported.
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Splitter converts markdown text into an ordered, flat list of Sections.
// While a tree would model heading nesting, downstream episode ingestion
// wants one flat unit per heading, so every heading starts a new section
// regardless of level.
//
// A Splitter holds no state; a single instance is safe for concurrent use.
type Splitter struct{}

// NewSplitter creates a new splitter instance.
func NewSplitter() *Splitter {
	return &Splitter{}
}

// Parse splits markdownContent into sections. It is total: for any input it
// terminates and returns a valid (possibly empty) list. If the block
// tokenizer fails on the input, Parse silently falls back to a plain line
// scanner instead of surfacing the error.
func (s *Splitter) Parse(markdownContent string) []Section {
	sections, err := parseBlocks(markdownContent)
	if err != nil {
		return scanLines(markdownContent)
	}
	return sections
}

// headingBoundary records where a section starts in the source text.
type headingBoundary struct {
	level     int
	title     string
	lineStart int
}

// parseBlocks is the structure-aware path. It tokenizes the document with
// goldmark, uses the heading nodes only to locate section boundaries, and
// slices the original source at those byte offsets. Slicing the source
// (rather than re-rendering the AST) keeps code fences, lists and emphasis
// byte-for-byte intact in the section bodies.
func parseBlocks(content string) (sections []Section, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("markdown tokenizer failed: %v", r)
		}
	}()

	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	src := []byte(content)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var boundaries []headingBoundary
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		heading, ok := node.(*ast.Heading)
		if !ok || heading.Lines().Len() == 0 {
			continue
		}

		start := lineStartOffset(src, heading.Lines().At(0).Start)
		line := strings.TrimSpace(physicalLine(src, start))
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			// The tokenizer also reports setext underline headings; those
			// carry no '#' marker line and do not delimit sections.
			continue
		}

		boundaries = append(boundaries, headingBoundary{
			level:     heading.Level,
			title:     headingTitle(heading, src, m[2]),
			lineStart: start,
		})
	}

	if len(boundaries) == 0 {
		intro := strings.TrimSpace(content)
		if intro == "" {
			return nil, nil
		}
		return []Section{{
			Level:      IntroductionLevel,
			Title:      IntroductionTitle,
			Content:    intro,
			RawContent: intro,
		}}, nil
	}

	if intro := strings.TrimSpace(content[:boundaries[0].lineStart]); intro != "" {
		sections = append(sections, Section{
			Level:      IntroductionLevel,
			Title:      IntroductionTitle,
			Content:    intro,
			RawContent: intro,
		})
	}

	for i, b := range boundaries {
		end := len(content)
		if i+1 < len(boundaries) {
			end = boundaries[i+1].lineStart
		}
		body := strings.TrimSpace(content[b.lineStart:end])
		sections = append(sections, Section{
			Level:      b.level,
			Title:      b.title,
			Content:    body,
			RawContent: stripHeadingLine(body),
		})
	}

	return sections, nil
}

// headingTitle extracts the plain title text of a heading. It prefers the
// rendered inline content (markup stripped); if that comes back empty it
// falls back to the raw text after the '#' markers, then to "Untitled".
func headingTitle(heading *ast.Heading, src []byte, rawRemainder string) string {
	title, err := renderInlineText(heading, src)
	if err == nil && title != "" {
		return title
	}
	if fallback := strings.TrimSpace(rawRemainder); fallback != "" {
		return fallback
	}
	return "Untitled"
}

// renderInlineText walks a node's inline children and concatenates their
// literal text, dropping markup such as emphasis markers.
func renderInlineText(n ast.Node, src []byte) (title string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("inline text extraction failed: %v", r)
		}
	}()

	var sb strings.Builder
	walkErr := ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.AutoLink:
			sb.Write(t.URL(src))
		}
		return ast.WalkContinue, nil
	})
	if walkErr != nil {
		return "", walkErr
	}
	return strings.TrimSpace(sb.String()), nil
}

// stripHeadingLine removes the leading heading line from a section body.
func stripHeadingLine(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#") {
		return strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}
	return strings.TrimSpace(content)
}

// lineStartOffset walks back from offset to the start of its physical line.
func lineStartOffset(src []byte, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	for offset > 0 && src[offset-1] != '\n' {
		offset--
	}
	return offset
}

// physicalLine returns the line beginning at start, without its newline.
func physicalLine(src []byte, start int) string {
	end := start
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return string(src[start:end])
}
