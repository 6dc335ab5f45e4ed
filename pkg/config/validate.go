package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/constants"
	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/output"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

// configFields lists the valid top-level keys.
var configFields = []string{"catalog", "catalog_table", "currency", "suggestions", "sort", "seed", "output"}

// commonTypos maps common typos to correct field names.
var commonTypos = map[string]string{
	"catalogue":      "catalog",
	"dataset":        "catalog",
	"table":          "catalog_table",
	"catalogTable":   "catalog_table",
	"currency_label": "currency",
	"suggestion":     "suggestions",
	"order":          "sort",
	"sort_order":     "sort",
	"format":         "output",
	"random_seed":    "seed",
}

var lineNumberPattern = regexp.MustCompile(`line (\d+):`)

// ValidateConfigFile validates YAML configuration data for syntax errors,
// unknown fields and invalid values.
//
// This performs strict validation using KnownFields(true) to detect typos
// and unknown configuration options.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *errors.ValidationResult: validation result with any errors and warnings found
func ValidateConfigFile(data []byte) *errors.ValidationResult {
	result := errors.NewValidationResult()

	verbose.Printf("Config validation: starting YAML parsing with strict field checking")

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		verbose.Printf("Config validation FAILED: YAML decode error: %v", err)
		result.AddError(decodeError(err))
		return result
	}

	validateConfigStruct(&cfg, result)

	// The built-in defaults always name a table, so only a file that sets
	// both fields is checked.
	if cfg.CatalogTable != "" && cfg.Catalog != "" && !catalog.IsSQLiteSource(cfg.Catalog) {
		result.AddWarning(fmt.Sprintf("catalog_table %q is ignored for non-SQLite catalog %q", cfg.CatalogTable, cfg.Catalog))
	}

	if result.HasErrors() {
		verbose.Printf("Config validation FAILED: %d errors found", len(result.Errors))
	} else {
		verbose.Printf("Config validation PASSED: no errors found")
	}
	return result
}

// decodeError converts a YAML decode error into a ValidationError with hints.
func decodeError(err error) *errors.ValidationError {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "field") && strings.Contains(errMsg, "not found"):
		field := extractUnknownField(errMsg)
		verr := errors.NewConfigValidationError("", fmt.Sprintf("unknown field '%s'", field))
		if line := extractLineNumber(errMsg); line > 0 {
			verr.Message = fmt.Sprintf("unknown field '%s' (line %d)", field, line)
		}
		if suggestion := suggestSimilarField(field); suggestion != "" {
			verr.Message += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
		}
		verr.ValidKeys = configFields
		return verr
	case strings.Contains(errMsg, "cannot unmarshal"):
		verr := errors.NewConfigValidationError("", errMsg)
		verr.Expected = extractExpectedType(errMsg)
		return verr
	default:
		return errors.NewConfigValidationError("", fmt.Sprintf("YAML syntax error: %s", errMsg))
	}
}

// Validate validates a loaded Config struct.
//
// Returns:
//   - *errors.ValidationResult: errors for invalid values
func (c *Config) Validate() *errors.ValidationResult {
	result := errors.NewValidationResult()
	validateConfigStruct(c, result)
	return result
}

// validateConfigStruct checks field values.
//
// Parameters:
//   - cfg: the configuration to check
//   - result: collects errors
func validateConfigStruct(cfg *Config, result *errors.ValidationResult) {
	if cfg.Suggestions != nil && *cfg.Suggestions < 0 {
		verr := errors.NewConfigValidationError("suggestions", fmt.Sprintf("must not be negative, got %d", *cfg.Suggestions))
		verr.Expected = "0 or a positive integer"
		result.AddError(verr)
	}

	if _, ok := ParseSortOrder(cfg.Sort); !ok {
		verr := errors.NewConfigValidationError("sort", fmt.Sprintf("unknown sort order %q", cfg.Sort))
		verr.ValidKeys = []string{constants.SortAscending, constants.SortDescending}
		result.AddError(verr)
	}

	if !output.IsValidFormat(cfg.Output) {
		verr := errors.NewConfigValidationError("output", fmt.Sprintf("unknown output format %q", cfg.Output))
		verr.ValidKeys = output.ValidFormats
		result.AddError(verr)
	}
}

// extractUnknownField extracts the field name from an unknown-field error.
//
// Error format: "yaml: unmarshal errors:\n  line X: field foo not found in type config.Config"
func extractUnknownField(errMsg string) string {
	parts := strings.SplitN(errMsg, "field ", 2)
	if len(parts) < 2 {
		return ""
	}
	field := parts[1]
	if idx := strings.Index(field, " "); idx > 0 {
		field = field[:idx]
	}
	return field
}

// extractLineNumber extracts the line number from a YAML error message.
//
// Returns:
//   - int: the line number, or 0 if not found
func extractLineNumber(errMsg string) int {
	matches := lineNumberPattern.FindStringSubmatch(errMsg)
	if len(matches) >= 2 {
		var lineNum int
		_, _ = fmt.Sscanf(matches[1], "%d", &lineNum)
		return lineNum
	}
	return 0
}

// extractExpectedType extracts the expected type from unmarshal errors
// like "cannot unmarshal !!str `abc` into int".
func extractExpectedType(errMsg string) string {
	if idx := strings.Index(errMsg, "into "); idx >= 0 {
		typePart := errMsg[idx+5:]
		if endIdx := strings.IndexAny(typePart, " \n"); endIdx > 0 {
			return typePart[:endIdx]
		}
		return typePart
	}
	return ""
}

// suggestSimilarField returns a suggested field name if the input looks like a typo.
//
// Parameters:
//   - field: the unknown field name
//
// Returns:
//   - string: suggested correct field name, or empty string if no suggestion
func suggestSimilarField(field string) string {
	if suggestion, found := commonTypos[field]; found {
		return suggestion
	}

	snake := strings.ReplaceAll(field, "-", "_")
	for _, f := range configFields {
		if strings.EqualFold(snake, f) {
			return f
		}
	}
	return ""
}
