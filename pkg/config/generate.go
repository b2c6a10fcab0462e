package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Document is a full configuration ready to be printed: root keys plus one
// typed section per module.
type Document struct {
	Root     *Config
	Sections map[string]interface{}
}

func (d Document) sectionNames() []string {
	names := make([]string, 0, len(d.Sections))
	for name := range d.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalTOML renders the document as TOML, root keys first and one
// table per module in name order.
func (d Document) MarshalTOML() (string, error) {
	var buf bytes.Buffer

	root, err := toml.Marshal(d.Root)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal root config")
	}
	buf.Write(root)

	for _, name := range d.sectionNames() {
		section, err := toml.Marshal(d.Sections[name])
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInternal, "failed to marshal [%s]", name)
		}
		fmt.Fprintf(&buf, "\n[%s]\n", name)
		buf.Write(section)
	}

	return buf.String(), nil
}

// MarshalYAML renders the document as YAML.
func (d Document) MarshalYAML() (string, error) {
	doc := map[string]interface{}{
		"modules":         d.Root.Modules,
		"add_newline":     d.Root.AddNewline,
		"command_timeout": d.Root.CommandTimeout,
		"strict":          d.Root.Strict,
	}
	for name, section := range d.Sections {
		doc[name] = section
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal yaml")
	}
	return string(out), nil
}

// GenerateConfigContent returns a starter config file: the document as
// TOML with every value commented out.
func GenerateConfigContent(d Document) (string, error) {
	content, err := d.MarshalTOML()
	if err != nil {
		return "", err
	}
	return commentOutConfigValues(content), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [railway]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
