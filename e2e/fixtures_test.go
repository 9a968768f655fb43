//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates the directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tf.workspace = tf.t.TempDir()
	return tf.workspace, nil
}

// CreateCatalog writes a YAML catalog with one workshop per title
func (tf *TUITestFramework) CreateCatalog(name string, titles ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	var b strings.Builder
	b.WriteString("workshops:\n")
	for i, title := range titles {
		fmt.Fprintf(&b, "  - title: %q\n    url: https://example.com/w/%d\n    date: 2024-05-%02d\n", title, i, i%28+1)
	}

	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// CreateConfig writes a local config file into the workspace
func (tf *TUITestFramework) CreateConfig(content string) error {
	return os.WriteFile(filepath.Join(tf.workspace, ".workshoplist.toml"), []byte(content), 0644)
}

// mixedTitles returns 12 Go and 8 Rust workshops, interleaved
func mixedTitles() []string {
	titles := make([]string, 20)
	for i := range titles {
		if i%5 < 3 {
			titles[i] = fmt.Sprintf("Go Workshop %02d", i)
		} else {
			titles[i] = fmt.Sprintf("Rust Workshop %02d", i)
		}
	}
	return titles
}
