package section

// IntroductionTitle is the title assigned to content that appears before the
// first heading of a document.
const IntroductionTitle = "Introduction"

// IntroductionLevel is the synthetic heading level of an Introduction section.
// Real headings occupy levels 1-6.
const IntroductionLevel = 0

// Section represents one heading-delimited unit of a Markdown document.
type Section struct {
	// Level is the heading depth (1 for #, 2 for ##, ...). Level 0 is
	// reserved for the Introduction pseudo-section.
	Level int `json:"level"`

	// Title is the heading text with inline markup stripped. For level 0
	// it is always IntroductionTitle.
	Title string `json:"title"`

	// Content is the full markdown of the section including its heading line.
	Content string `json:"content"`

	// RawContent is Content without the leading heading line. For level 0
	// it equals Content.
	RawContent string `json:"raw_content"`
}
