package gamedata

import (
	"encoding/json"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// Load reads an embedded table and decodes it by extension: .json or .yaml.
func Load[T any](filename string) (T, error) {
	var result T
	if err := loadInto(filename, &result); err != nil {
		return result, err
	}
	return result, nil
}

// loadInto decodes an embedded table over dst, so fields dst already holds
// survive when the table leaves them out.
func loadInto(filename string, dst any) error {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}
	return decode(filename, content, dst)
}

func decode(filename string, content []byte, dst any) error {
	switch ext := path.Ext(filename); ext {
	case ".json":
		if err := json.Unmarshal(content, dst); err != nil {
			return fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, dst); err != nil {
			return fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
		}
	default:
		return fmt.Errorf("unsupported table format %q for %s", ext, filename)
	}
	return nil
}
