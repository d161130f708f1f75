package episode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdsplit/internal/section"
)

func sampleSections() []section.Section {
	return []section.Section{
		{Level: 0, Title: "Introduction", Content: "intro", RawContent: "intro"},
		{Level: 1, Title: "Setup", Content: "# Setup\nrun make", RawContent: "run make"},
		{Level: 2, Title: "Setup", Content: "## Setup\nagain", RawContent: "again"},
	}
}

func TestFromSections_Mapping(t *testing.T) {
	episodes := NewBuilder().FromSections("docs/guide.md", sampleSections())
	require.Len(t, episodes, 3)

	assert.Equal(t, "Document: Introduction", episodes[0].Name)
	assert.Equal(t, "intro", episodes[0].Body)
	assert.Equal(t, "Section from file: docs/guide.md", episodes[0].SourceDescription)

	assert.Equal(t, "Document: Setup", episodes[1].Name)
	assert.Equal(t, "run make", episodes[1].Body)
	assert.Equal(t, 1, episodes[1].SectionLevel)
	assert.Equal(t, len("run make"), episodes[1].ContentLength)
}

func TestFromSections_StableIdentifiers(t *testing.T) {
	b := NewBuilder()

	first := b.FromSections("docs/guide.md", sampleSections())
	second := b.FromSections("docs/guide.md", sampleSections())
	require.Equal(t, first, second)

	// Duplicate titles within a document still get distinct IDs.
	assert.NotEqual(t, first[1].ID, first[2].ID)
	assert.NotEqual(t, first[1].UUID, first[2].UUID)

	// A different source document yields different IDs.
	other := b.FromSections("docs/other.md", sampleSections())
	assert.NotEqual(t, first[0].ID, other[0].ID)
}

func TestFromSections_CustomNaming(t *testing.T) {
	b := &Builder{NamePrefix: "Note: ", SourceDesc: "manual upload"}

	episodes := b.FromSections("a.md", sampleSections()[:1])
	require.Len(t, episodes, 1)
	assert.Equal(t, "Note: Introduction", episodes[0].Name)
	assert.Equal(t, "manual upload", episodes[0].SourceDescription)
}

func TestSaveEpisodes_WritesValidJSON(t *testing.T) {
	episodes := NewBuilder().FromSections("guide.md", sampleSections())

	out := filepath.Join(t.TempDir(), "episodes.json")
	require.NoError(t, SaveEpisodes(out, episodes))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Document: Setup"`)
}

func TestSaveEpisodes_RejectsInvalidLevel(t *testing.T) {
	episodes := NewBuilder().FromSections("guide.md", sampleSections())
	episodes[0].SectionLevel = 9

	err := SaveEpisodes(filepath.Join(t.TempDir(), "episodes.json"), episodes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestSaveEpisodes_EmptyList(t *testing.T) {
	out := filepath.Join(t.TempDir(), "episodes.json")
	require.NoError(t, SaveEpisodes(out, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
