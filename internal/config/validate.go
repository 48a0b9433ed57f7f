package config

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// ValidateSettings checks the raw settings map against the embedded JSON
// schema before decoding. Unknown keys are rejected, so a typo does not
// silently fall back to the default value.
func ValidateSettings(settings map[string]any) error {
	// viper folds the bound --config flag into AllSettings; it is CLI
	// plumbing, not configuration.
	doc := make(map[string]any, len(settings))
	for k, v := range settings {
		if k == "config" {
			continue
		}
		doc[k] = v
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate config schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, schemaErr := range result.Errors() {
		errs = append(errs, fmt.Sprintf("%s: %s", schemaErr.Field(), schemaErr.Description()))
	}
	sort.Strings(errs)

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
}
