package catalog

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"workshoplist/internal/domain"
)

// postName matches Jekyll style file names: 2024-03-01-intro-to-go.md
var postName = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// frontMatter is the subset of post metadata the list needs
type frontMatter struct {
	Title     string  `yaml:"title"`
	URL       string  `yaml:"url"`
	Permalink string  `yaml:"permalink"`
	Summary   string  `yaml:"summary"`
	Excerpt   string  `yaml:"excerpt"`
	Tags      tagList `yaml:"tags"`
	Date      string  `yaml:"date"`
	Published *bool   `yaml:"published"`
}

// loadPosts scans dir for Markdown posts, newest first
func loadPosts(ctx context.Context, dir string) ([]domain.Workshop, error) {
	var workshops []domain.Workshop

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			log.Printf("Error walking path %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			// Skip hidden and generated directories
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "_site" || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown":
		default:
			return nil
		}

		w, ok, err := readPost(path)
		if err != nil {
			log.Printf("Skipping post %s: %v", path, err)
			return nil
		}
		if ok {
			workshops = append(workshops, w)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan posts in %s: %w", dir, err)
	}

	sort.SliceStable(workshops, func(i, j int) bool {
		if !workshops[i].Date.Equal(workshops[j].Date) {
			return workshops[i].Date.After(workshops[j].Date)
		}
		return workshops[i].ID < workshops[j].ID
	})

	return assignIDs(workshops), nil
}

// readPost parses one post. ok is false for unpublished drafts.
func readPost(path string) (domain.Workshop, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Workshop{}, false, err
	}

	var fm frontMatter
	if raw, found := extractFrontMatter(data); found {
		if err := yaml.Unmarshal(raw, &fm); err != nil {
			return domain.Workshop{}, false, fmt.Errorf("bad front matter: %w", err)
		}
	}
	if fm.Published != nil && !*fm.Published {
		return domain.Workshop{}, false, nil
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	slug := base
	var fileDate time.Time
	if m := postName.FindStringSubmatch(base); m != nil {
		fileDate, _ = time.Parse("2006-01-02", m[1])
		slug = m[2]
	}

	w := domain.Workshop{
		ID:      base,
		Title:   fm.Title,
		URL:     fm.URL,
		Summary: fm.Summary,
		Tags:    []string(fm.Tags),
		Date:    parseDate(fm.Date),
	}
	if w.Title == "" {
		w.Title = strings.ReplaceAll(slug, "-", " ")
	}
	if w.URL == "" {
		w.URL = fm.Permalink
	}
	if w.Summary == "" {
		w.Summary = fm.Excerpt
	}
	if w.Date.IsZero() {
		w.Date = fileDate
	}
	return w, true, nil
}

// extractFrontMatter returns the YAML block between the leading "---" fences
func extractFrontMatter(data []byte) ([]byte, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "---" {
		return nil, false
	}

	var block bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "---" || trimmed == "..." {
			return block.Bytes(), true
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}
	return nil, false
}
