package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLines_EmptyInput(t *testing.T) {
	assert.Empty(t, scanLines(""))
	assert.Empty(t, scanLines("  \n\n\t"))
}

func TestScanLines_MatchesPrimaryPath(t *testing.T) {
	// For inputs the block tokenizer handles, the line scanner must agree
	// on level, title and raw content.
	inputs := []string{
		"# A\ntext1\n## B\ntext2\n# C\ntext3",
		"intro line\n# Heading\nbody",
		"only an introduction, no headings at all",
		"# Solo",
		"#### Deep\n\nsome body\n\n## Shallower\nmore",
	}

	for _, input := range inputs {
		primary, err := parseBlocks(input)
		require.NoError(t, err)

		fallback := scanLines(input)
		require.Len(t, fallback, len(primary), "input: %q", input)

		for i := range primary {
			assert.Equal(t, primary[i].Level, fallback[i].Level)
			assert.Equal(t, primary[i].Title, fallback[i].Title)
			assert.Equal(t, primary[i].RawContent, fallback[i].RawContent)
		}
	}
}

func TestScanLines_IndentedHeadingLine(t *testing.T) {
	sections := scanLines("  # Indented\nbody")
	require.Len(t, sections, 1)

	assert.Equal(t, 1, sections[0].Level)
	assert.Equal(t, "Indented", sections[0].Title)
	assert.Equal(t, "body", sections[0].RawContent)
}

func TestScanLines_SevenHashesIsBody(t *testing.T) {
	sections := scanLines("# Top\n####### not a heading")
	require.Len(t, sections, 1)
	assert.Equal(t, "####### not a heading", sections[0].RawContent)
}

func TestScanLines_DoesNotSkipFencedHashes(t *testing.T) {
	// Known discrepancy with the tokenizer path: the line scanner has no
	// code fence awareness, so a '#' line inside a fence still splits.
	sections := scanLines("# Setup\n```sh\n# comment\n```")
	require.Len(t, sections, 2)
	assert.Equal(t, "comment", sections[1].Title)
}

func TestParse_SurvivesArbitraryInput(t *testing.T) {
	s := NewSplitter()

	inputs := []string{
		"\x00\x01\x02",
		"#  \n",
		"######",
		"```\nunclosed fence\n# trapped",
		"# a\n\n\n# b\n",
		"\n\n\n",
		"# ok\r\nwindows line\r\n",
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() { s.Parse(input) }, "input: %q", input)
	}
}
