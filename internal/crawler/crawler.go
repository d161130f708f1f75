package crawler

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Document is one markdown file discovered during a scan.
type Document struct {
	Path    string
	Content string
}

// Crawler scans a directory tree for markdown documents.
type Crawler struct {
	ignored    []string
	extensions []string
}

// NewCrawler creates a new crawler instance.
func NewCrawler() *Crawler {
	return &Crawler{
		ignored:    []string{".git", "vendor", "node_modules", "testdata"},
		extensions: []string{".md", ".markdown"},
	}
}

// Scan walks the root directory and streams every markdown document through
// the callback, preventing large memory buildup on big trees. Files that
// cannot be read are skipped rather than failing the whole scan.
func (c *Crawler) Scan(root string, onDocument func(Document)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !c.isMarkdown(d.Name()) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		onDocument(Document{Path: path, Content: string(content)})
		return nil
	})
}

func (c *Crawler) isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range c.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
