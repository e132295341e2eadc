package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNoNames = errors.New("names file has no entries")

// LoadNames reads a segment list. YAML files may hold a plain list or a
// mapping with a "segments" key; anything else is one label per line, with
// blank lines and "#" comments skipped.
func LoadNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read names file: %w", err)
	}

	var names []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		names, err = parseYAMLNames(data)
	default:
		names, err = parseLines(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse names file %s: %w", path, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoNames)
	}
	return names, nil
}

func parseYAMLNames(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var raw []string
	switch doc := node.Content[0]; doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&raw); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var wrapped struct {
			Segments []string `yaml:"segments"`
		}
		if err := doc.Decode(&wrapped); err != nil {
			return nil, err
		}
		raw = wrapped.Segments
	default:
		return nil, fmt.Errorf("expected a list of names, got %s", doc.Tag)
	}

	names := raw[:0]
	for _, n := range raw {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names, nil
}

func parseLines(data []byte) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, sc.Err()
}
