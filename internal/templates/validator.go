package templates

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
)

// ValidateSyntax checks that structured files parse. Formats without a
// parser here pass unchecked.
func ValidateSyntax(p string, data []byte) error {
	switch path.Ext(p) {
	case ".json":
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
	case ".toml":
		var v map[string]any
		if _, err := toml.Decode(string(data), &v); err != nil {
			return fmt.Errorf("invalid TOML: %w", err)
		}
	}
	return nil
}
