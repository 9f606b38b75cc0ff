package rules

import (
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// BundleLoadError represents a failure to load or validate a genre bundle file.
type BundleLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *BundleLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load bundle %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load bundle %s: %s", e.Path, e.Message)
}

func (e *BundleLoadError) Unwrap() error {
	return e.Cause
}

// bundleFile is the YAML shape of a custom genre bundle.
type bundleFile struct {
	Genre    string `yaml:"genre" validate:"required,min=1"`
	Patterns []struct {
		Name  string `yaml:"name" validate:"required"`
		Label string `yaml:"label" validate:"required"`
		Expr  string `yaml:"expr" validate:"required"`
	} `yaml:"patterns" validate:"required,min=1,dive"`
	Features []struct {
		Name    string   `yaml:"name" validate:"required"`
		Aliases []string `yaml:"aliases" validate:"required,min=1"`
	} `yaml:"features" validate:"dive"`
}

// LoadBundleFile reads a custom genre bundle from a YAML file, validates its
// shape, and compiles its patterns. The returned bundle can be merged into a
// registry via Registry.WithBundles.
func LoadBundleFile(path string) (*GenreBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &BundleLoadError{Path: path, Message: "read failed", Cause: err}
	}

	var file bundleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &BundleLoadError{Path: path, Message: "invalid YAML", Cause: err}
	}

	if err := validator.New().Struct(&file); err != nil {
		return nil, &BundleLoadError{Path: path, Message: "invalid bundle definition", Cause: err}
	}

	bundle := &GenreBundle{Name: file.Genre}
	for _, p := range file.Patterns {
		expr, err := regexp.Compile(p.Expr)
		if err != nil {
			return nil, &BundleLoadError{
				Path:    path,
				Message: fmt.Sprintf("pattern %q does not compile", p.Name),
				Cause:   err,
			}
		}
		bundle.Patterns = append(bundle.Patterns, PatternRule{
			Name:     p.Name,
			Label:    p.Label,
			Expr:     expr,
			Required: true,
		})
	}
	for _, f := range file.Features {
		bundle.Features = append(bundle.Features, FeatureRule{Name: f.Name, Aliases: f.Aliases})
	}

	return bundle, nil
}
