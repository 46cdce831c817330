//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary panels directory
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreatePanel writes a markdown panel with a front matter title
func (tf *TUITestFramework) CreatePanel(name, title, body string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name+".md")
	content := fmt.Sprintf("---\ntitle: %s\n---\n%s\n", title, body)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write panel: %w", err)
	}
	return path, nil
}

// CreateDeck writes the standard three panel fixture
func (tf *TUITestFramework) CreateDeck() (string, error) {
	workspace, err := tf.CreateTestWorkspace()
	if err != nil {
		return "", err
	}
	panels := []struct{ name, title, body string }{
		{"01-intro", "Introduction", "Welcome to the deck."},
		{"02-usage", "Usage", "Swipe or use the arrow keys."},
		{"03-outro", "Wrapping Up", "That is all."},
	}
	for _, p := range panels {
		if _, err := tf.CreatePanel(p.name, p.title, p.body); err != nil {
			return "", err
		}
	}
	return workspace, nil
}
