package writer

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdsplit/internal/section"
)

func TestWriteSections(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewSectionWriter(fs)

	sections := []section.Section{
		{Level: 0, Title: "Introduction", Content: "intro text"},
		{Level: 1, Title: "Getting Started!", Content: "# Getting Started!\nrun it"},
	}

	paths, err := w.WriteSections("out", sections)
	require.NoError(t, err)
	require.Equal(t, []string{"out/01-introduction.md", "out/02-getting-started.md"}, paths)

	content, err := afero.ReadFile(fs, "out/02-getting-started.md")
	require.NoError(t, err)
	assert.Equal(t, "# Getting Started!\nrun it\n", string(content))
}

func TestWriteSections_Empty(t *testing.T) {
	w := NewSectionWriter(afero.NewMemMapFs())

	paths, err := w.WriteSections("out", nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Getting Started", "getting-started"},
		{"What's New?", "whats-new"},
		{"  spaced   out  ", "spaced-out"},
		{"***", "untitled"},
		{"Tổng quan hệ thống", "tổng-quan-hệ-thống"},
		{strings.Repeat("long title ", 20), "long-title-long-title-long-title-long-title-long-t"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.title))
		})
	}
}
