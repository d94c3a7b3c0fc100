package definitions

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jvdt-hub/backend/internal/models"
)

//go:embed tests/*.yaml
var testFS embed.FS

var ErrUnknownTest = errors.New("unknown test")

// Load reads an embedded test definition by id.
func Load(id string) (*models.TestDefinition, error) {
	data, err := testFS.ReadFile("tests/" + id + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("test %q (available: %s): %w", id, strings.Join(List(), ", "), ErrUnknownTest)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse test %q: %w", id, err)
	}
	return def, nil
}

// LoadFile reads a definition from disk, for instruments kept outside the binary.
func LoadFile(path string) (*models.TestDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse definition %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a YAML definition. JSON documents parse too.
func Parse(data []byte) (*models.TestDefinition, error) {
	var def models.TestDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	if def.ID == "" {
		return nil, errors.New("definition has no id")
	}
	return &def, nil
}

// List returns the ids of all embedded definitions, sorted.
func List() []string {
	entries, _ := testFS.ReadDir("tests")
	var ids []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(ids)
	return ids
}
