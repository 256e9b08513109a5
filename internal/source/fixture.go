// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docsgen/pkg/types"
)

// fixtureFile is the on-disk shape of a fixture content source.
type fixtureFile struct {
	Project     types.Project      `yaml:"project"`
	Definitions []types.Definition `yaml:"definitions"`
	FAQs        []types.FAQ        `yaml:"faqs"`
}

// FixtureSource serves content records from a local YAML file. It backs
// offline runs and tests with the same record shapes the Notion source
// produces.
type FixtureSource struct {
	path string
	data *fixtureFile
}

// NewFixtureSource opens and parses the fixture file at path.
func NewFixtureSource(path string) (*FixtureSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	var data fixtureFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	if err := validateDefinitions(data.Definitions); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	if err := validateFAQs(data.FAQs); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return &FixtureSource{path: path, data: &data}, nil
}

// FindProject matches the fixture's project by name, case-insensitively.
func (s *FixtureSource) FindProject(_ context.Context, name string) (types.Project, error) {
	if !strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(s.data.Project.Name)) {
		return types.Project{}, fmt.Errorf("project %q not found in fixture %s", name, s.path)
	}
	return s.data.Project, nil
}

// ListDefinitions returns the fixture's definitions in file order.
func (s *FixtureSource) ListDefinitions(_ context.Context, projectID string) ([]types.Definition, error) {
	if projectID != s.data.Project.ID {
		return nil, fmt.Errorf("unknown project id %q in fixture %s", projectID, s.path)
	}
	return append([]types.Definition(nil), s.data.Definitions...), nil
}

// ListFAQs returns the fixture's FAQ entries in file order.
func (s *FixtureSource) ListFAQs(_ context.Context, projectID string) ([]types.FAQ, error) {
	if projectID != s.data.Project.ID {
		return nil, fmt.Errorf("unknown project id %q in fixture %s", projectID, s.path)
	}
	return append([]types.FAQ(nil), s.data.FAQs...), nil
}
