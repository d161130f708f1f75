package episode

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mdsplit/internal/section"
)

// Namespace for deterministic episode UUIDs. Re-running the same document
// must produce the same identifiers so downstream re-ingestion stays
// idempotent.
var episodeNamespace = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

const (
	defaultNamePrefix = "Document: "
	defaultSourceDesc = "Section from file: %s"
)

// Episode is one named content unit prepared for knowledge-store ingestion.
// Each parsed section maps 1:1 to an episode; the section title becomes the
// human-readable episode name.
type Episode struct {
	ID                string `json:"id"`
	UUID              string `json:"uuid"`
	Name              string `json:"name"`
	Body              string `json:"body"`
	SourceFile        string `json:"source_file"`
	SourceDescription string `json:"source_description"`
	SectionTitle      string `json:"section_title"`
	SectionLevel      int    `json:"section_level"`
	ContentLength     int    `json:"content_length"`
}

// Builder maps sections to episodes. The zero value is not usable; create
// one with NewBuilder and override fields as needed.
type Builder struct {
	// NamePrefix is prepended to the section title to form the episode name.
	NamePrefix string
	// SourceDesc describes where an episode came from. A "%s" placeholder,
	// if present, is replaced with the source file path.
	SourceDesc string
}

// NewBuilder creates a builder with the default naming scheme.
func NewBuilder() *Builder {
	return &Builder{
		NamePrefix: defaultNamePrefix,
		SourceDesc: defaultSourceDesc,
	}
}

// FromSections converts parsed sections of one document into episodes,
// preserving section order.
func (b *Builder) FromSections(filePath string, sections []section.Section) []Episode {
	episodes := make([]Episode, 0, len(sections))

	for i, sec := range sections {
		id := stableEpisodeID(filePath, i, sec.Title)
		episodes = append(episodes, Episode{
			ID:                id,
			UUID:              uuid.NewSHA1(episodeNamespace, []byte(id)).String(),
			Name:              b.NamePrefix + sec.Title,
			Body:              sec.RawContent,
			SourceFile:        filePath,
			SourceDescription: b.sourceDescription(filePath),
			SectionTitle:      sec.Title,
			SectionLevel:      sec.Level,
			ContentLength:     len(sec.RawContent),
		})
	}

	return episodes
}

func (b *Builder) sourceDescription(filePath string) string {
	if strings.Contains(b.SourceDesc, "%s") {
		return fmt.Sprintf(b.SourceDesc, filePath)
	}
	return b.SourceDesc
}

// stableEpisodeID derives a deterministic ID from the document path, the
// section position and its title. Titles alone are not unique within a
// document, hence the position.
func stableEpisodeID(filePath string, index int, title string) string {
	raw := fmt.Sprintf("%s:%d:%s", filePath, index, title)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
