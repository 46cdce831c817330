package discovery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"swipe/internal/domain"
)

// panelExtensions lists the file types read as panels
var panelExtensions = map[string]bool{
	".md":  true,
	".txt": true,
}

var frontMatterDelim = []byte("---")

type frontMatter struct {
	Title string `yaml:"title"`
	Color string `yaml:"color"`
}

// IsPanelFile reports whether name would be loaded as a panel
func IsPanelFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return panelExtensions[strings.ToLower(filepath.Ext(base))]
}

// LoadPanels reads every panel file directly inside dir, ordered by file name
func LoadPanels(dir string) (domain.PanelSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.PanelSet{Dir: dir}, fmt.Errorf("failed to read panels directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsPanelFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	set := domain.PanelSet{Dir: dir, Panels: make([]domain.Panel, 0, len(names))}
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return set, fmt.Errorf("failed to read panel %s: %w", name, err)
		}
		panel, err := ParsePanel(name, data)
		if err != nil {
			return set, err
		}
		panel.Path = path
		set.Panels = append(set.Panels, panel)
	}
	return set, nil
}

// ParsePanel builds a panel from a file's contents. An optional YAML front
// matter block delimited by "---" lines supplies title and color.
func ParsePanel(name string, data []byte) (domain.Panel, error) {
	panel := domain.Panel{
		Name: strings.TrimSuffix(name, filepath.Ext(name)),
	}

	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	header, body, ok := splitFrontMatter(data)
	if ok {
		var fm frontMatter
		if err := yaml.Unmarshal(header, &fm); err != nil {
			return panel, fmt.Errorf("failed to parse front matter of %s: %w", name, err)
		}
		panel.Title = strings.TrimSpace(fm.Title)
		panel.Color = strings.TrimSpace(fm.Color)
		data = body
	}

	panel.Body = strings.TrimRight(string(data), "\n")
	return panel, nil
}

func splitFrontMatter(data []byte) (header, body []byte, ok bool) {
	first, rest, found := bytes.Cut(data, []byte("\n"))
	if !found || !bytes.Equal(bytes.TrimSpace(first), frontMatterDelim) {
		return nil, data, false
	}

	lines := bytes.SplitAfter(rest, []byte("\n"))
	n := 0
	for _, line := range lines {
		if bytes.Equal(bytes.TrimSpace(line), frontMatterDelim) {
			return rest[:n], rest[n+len(line):], true
		}
		n += len(line)
	}
	return nil, data, false
}
