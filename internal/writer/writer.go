package writer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"mdsplit/internal/section"
)

var (
	unsafeChars  = regexp.MustCompile(`[^\p{L}\p{N}\s_-]`)
	dashRuns     = regexp.MustCompile(`[-\s]+`)
	maxSlugRunes = 50
)

// SectionWriter writes each section of a document to its own markdown file.
type SectionWriter struct {
	fs afero.Fs
}

// NewSectionWriter creates a writer over the given filesystem. Pass
// afero.NewOsFs() for real output or afero.NewMemMapFs() in tests.
func NewSectionWriter(fs afero.Fs) *SectionWriter {
	return &SectionWriter{fs: fs}
}

// WriteSections writes sections to outputDir as numbered files named after
// the section titles, e.g. "01-introduction.md". It returns the written
// paths in section order.
func (w *SectionWriter) WriteSections(outputDir string, sections []section.Section) ([]string, error) {
	if err := w.fs.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	paths := make([]string, 0, len(sections))
	for i, sec := range sections {
		name := fmt.Sprintf("%02d-%s.md", i+1, Slug(sec.Title))
		path := filepath.Join(outputDir, name)

		if err := afero.WriteFile(w.fs, path, []byte(sec.Content+"\n"), 0o644); err != nil {
			return paths, fmt.Errorf("failed to write section %q: %w", sec.Title, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// Slug turns a section title into a filename-safe fragment: punctuation is
// dropped, whitespace collapses to single dashes, and the result is capped
// at 50 runes.
func Slug(title string) string {
	s := unsafeChars.ReplaceAllString(title, "")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(strings.ToLower(s), "-")
	if s == "" {
		s = "untitled"
	}
	runes := []rune(s)
	if len(runes) > maxSlugRunes {
		s = strings.Trim(string(runes[:maxSlugRunes]), "-")
	}
	return s
}
