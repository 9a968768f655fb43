// Package catalog reads the workshop list from disk.
//
// A catalog is either a single data file (.yaml, .yml, .json or .toml) with a
// top-level "workshops" list, or a directory of Markdown posts whose YAML
// front matter carries the title and link of each workshop.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"workshoplist/internal/domain"
)

// ErrUnsupportedFormat is returned for files whose extension has no decoder
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// entry is the on-disk shape of a workshop
type entry struct {
	ID      string  `yaml:"id" json:"id" toml:"id"`
	Title   string  `yaml:"title" json:"title" toml:"title"`
	URL     string  `yaml:"url" json:"url" toml:"url"`
	Summary string  `yaml:"summary" json:"summary" toml:"summary"`
	Tags    tagList `yaml:"tags" json:"tags" toml:"tags"`
	Date    string  `yaml:"date" json:"date" toml:"date"`
}

type document struct {
	Workshops []entry `yaml:"workshops" json:"workshops" toml:"workshops"`
}

// Load reads the catalog at path. Directories are scanned for posts.
func Load(ctx context.Context, path string) ([]domain.Workshop, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if info.IsDir() {
		return loadPosts(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	entries, err := decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	workshops := make([]domain.Workshop, 0, len(entries))
	for _, e := range entries {
		workshops = append(workshops, e.workshop())
	}
	return assignIDs(workshops), nil
}

// decode parses a data file by extension. YAML and JSON also accept a bare
// list of workshops at the top level.
func decode(ext string, data []byte) ([]entry, error) {
	var doc document
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var list []entry
		if err := yaml.Unmarshal(data, &list); err == nil {
			return list, nil
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".json":
		trimmed := strings.TrimSpace(string(data))
		if strings.HasPrefix(trimmed, "[") {
			var list []entry
			if err := json.Unmarshal(data, &list); err != nil {
				return nil, err
			}
			return list, nil
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return doc.Workshops, nil
}

func (e entry) workshop() domain.Workshop {
	return domain.Workshop{
		ID:      strings.TrimSpace(e.ID),
		Title:   e.Title,
		URL:     e.URL,
		Summary: e.Summary,
		Tags:    []string(e.Tags),
		Date:    parseDate(e.Date),
	}
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// assignIDs fills in missing IDs from titles and makes every ID unique
func assignIDs(workshops []domain.Workshop) []domain.Workshop {
	seen := make(map[string]int, len(workshops))
	for i := range workshops {
		id := workshops[i].ID
		if id == "" {
			id = Slugify(workshops[i].Title)
		}
		if id == "" {
			id = "workshop"
		}
		seen[id]++
		if n := seen[id]; n > 1 {
			id = id + "-" + strconv.Itoa(n)
		}
		workshops[i].ID = id
	}
	return workshops
}

// Slugify lowercases s and joins its alphanumeric runs with dashes
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// tagList accepts either a YAML sequence or a whitespace separated string
type tagList []string

func (t *tagList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*t = strings.Fields(value.Value)
		return nil
	case yaml.SequenceNode:
		var tags []string
		if err := value.Decode(&tags); err != nil {
			return err
		}
		*t = tags
		return nil
	default:
		return fmt.Errorf("line %d: tags must be a string or a list", value.Line)
	}
}
