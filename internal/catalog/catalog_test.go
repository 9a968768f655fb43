package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshoplist/internal/domain"
)

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func titles(workshops []domain.Workshop) []string {
	out := make([]string, len(workshops))
	for i, w := range workshops {
		out[i] = w.Title
	}
	return out
}

func TestLoadDataFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml document",
			file: "workshops.yaml",
			content: `workshops:
  - title: Intro to Go
    url: /w/intro-go
    tags: [go, beginner]
  - title: Advanced Rust
  - title: Go Concurrency
    tags: go concurrency
`,
		},
		{
			name: "yaml bare list",
			file: "workshops.yml",
			content: `- title: Intro to Go
  url: /w/intro-go
  tags: [go, beginner]
- title: Advanced Rust
- title: Go Concurrency
  tags: go concurrency
`,
		},
		{
			name: "json document",
			file: "workshops.json",
			content: `{"workshops": [
  {"title": "Intro to Go", "url": "/w/intro-go", "tags": ["go", "beginner"]},
  {"title": "Advanced Rust"},
  {"title": "Go Concurrency", "tags": ["go", "concurrency"]}
]}`,
		},
		{
			name: "json bare list",
			file: "workshops.json",
			content: `[
  {"title": "Intro to Go", "url": "/w/intro-go", "tags": ["go", "beginner"]},
  {"title": "Advanced Rust"},
  {"title": "Go Concurrency", "tags": ["go", "concurrency"]}
]`,
		},
		{
			name: "toml",
			file: "workshops.toml",
			content: `[[workshops]]
title = "Intro to Go"
url = "/w/intro-go"
tags = ["go", "beginner"]

[[workshops]]
title = "Advanced Rust"

[[workshops]]
title = "Go Concurrency"
tags = ["go", "concurrency"]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, t.TempDir(), tt.file, tt.content)

			workshops, err := Load(context.Background(), path)
			require.NoError(t, err)

			assert.Equal(t, []string{"Intro to Go", "Advanced Rust", "Go Concurrency"}, titles(workshops))
			assert.Equal(t, "intro-to-go", workshops[0].ID)
			assert.Equal(t, "/w/intro-go", workshops[0].URL)
			assert.Equal(t, []string{"go", "beginner"}, workshops[0].Tags)
			assert.Equal(t, []string{"go", "concurrency"}, workshops[2].Tags)
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), "workshops.csv", "title\nIntro to Go\n")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDeduplicatesIDs(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), "w.yaml", `- title: Go Basics
- title: Go Basics
- id: custom
  title: Something
- title: "!!!"
`)

	workshops, err := Load(context.Background(), path)
	require.NoError(t, err)

	ids := make([]string, len(workshops))
	for i, w := range workshops {
		ids[i] = w.ID
	}
	assert.Equal(t, []string{"go-basics", "go-basics-2", "custom", "workshop"}, ids)
}

func TestLoadPostsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "2024-01-10-intro-to-go.md", `---
title: Intro to Go
permalink: /workshops/intro-to-go/
excerpt: First steps
tags: go beginner
---
Body text.
`)
	writeCatalog(t, dir, "2024-03-05-advanced-rust.markdown", `---
title: "Advanced Rust"
date: 2024-03-05 10:00:00
---
`)
	writeCatalog(t, dir, "nested/2023-12-01-go-concurrency.md", "No front matter here.\n")
	writeCatalog(t, dir, "2024-05-01-draft.md", `---
title: Draft
published: false
---
`)
	writeCatalog(t, dir, "notes.txt", "ignored")
	writeCatalog(t, dir, ".hidden/2025-01-01-secret.md", "---\ntitle: Secret\n---\n")

	workshops, err := Load(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, []string{"Advanced Rust", "Intro to Go", "go concurrency"}, titles(workshops))

	intro := workshops[1]
	assert.Equal(t, "2024-01-10-intro-to-go", intro.ID)
	assert.Equal(t, "/workshops/intro-to-go/", intro.URL)
	assert.Equal(t, "First steps", intro.Summary)
	assert.Equal(t, []string{"go", "beginner"}, intro.Tags)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), intro.Date)
}

func TestLoadPostsHonoursCancellation(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "2024-01-10-intro-to-go.md", "---\ntitle: Intro to Go\n---\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Intro to Go":          "intro-to-go",
		"  Go -- Concurrency ": "go-concurrency",
		"C++ & Rust!":          "c-rust",
		"":                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestExtractFrontMatter(t *testing.T) {
	raw, ok := extractFrontMatter([]byte("---\ntitle: A\n---\nbody"))
	require.True(t, ok)
	assert.Equal(t, "title: A\n", string(raw))

	_, ok = extractFrontMatter([]byte("title: A\n"))
	assert.False(t, ok)

	_, ok = extractFrontMatter([]byte("---\ntitle: A\n"))
	assert.False(t, ok)
}
