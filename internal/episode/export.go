package episode

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed episodes.schema.json
var episodesSchema string

var (
	compiledSchemaMu sync.Mutex
	compiledSchema   *jsonschema.Schema
)

// SaveEpisodes validates episodes against the episode schema and writes them
// to path as pretty-printed JSON.
func SaveEpisodes(path string, episodes []Episode) error {
	if episodes == nil {
		episodes = []Episode{}
	}
	if err := validateWithSchema(episodes); err != nil {
		return err
	}

	data, err := json.MarshalIndent(episodes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal episodes: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write episodes file: %w", err)
	}
	return nil
}

func validateWithSchema(episodes []Episode) error {
	schema, err := loadCompiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile episode schema: %w", err)
	}

	// Round-trip through encoding/json so the validator sees the same
	// shape that ends up in the file.
	raw, err := json.Marshal(episodes)
	if err != nil {
		return fmt.Errorf("failed to marshal episodes for schema validation: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("failed to normalize episodes for schema validation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("episode schema validation failed: %w", err)
	}
	return nil
}

func loadCompiledSchema() (*jsonschema.Schema, error) {
	compiledSchemaMu.Lock()
	defer compiledSchemaMu.Unlock()

	if compiledSchema != nil {
		return compiledSchema, nil
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("episodes.schema.json", strings.NewReader(episodesSchema)); err != nil {
		return nil, err
	}
	compiled, err := compiler.Compile("episodes.schema.json")
	if err != nil {
		return nil, err
	}

	compiledSchema = compiled
	return compiled, nil
}
