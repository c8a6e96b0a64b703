// Package article holds the fixed collection of articles devpub publishes.
package article

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed articles.yaml
var embeddedArticles []byte

// DefaultTags is used for records that declare no tags.
var DefaultTags = []string{"technology"}

type Record struct {
	Title        string
	Body         string
	Tags         []string
	Published    bool
	CanonicalURL string
	Description  string
}

// IndexError is returned by Get for an index outside [0, Count).
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("article index %d out of range [0, %d)", e.Index, e.Count)
}

type fileFormat struct {
	Articles []struct {
		Title        string   `yaml:"title"`
		Body         string   `yaml:"body"`
		Tags         []string `yaml:"tags"`
		Published    *bool    `yaml:"published"`
		CanonicalURL string   `yaml:"canonical_url"`
		Description  string   `yaml:"description"`
	} `yaml:"articles"`
}

// Store is read-only after Load and safe for concurrent use.
type Store struct {
	records []Record
}

// Default returns the collection compiled into the binary.
func Default() (*Store, error) {
	return Load(embeddedArticles)
}

func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read articles file: %w", err)
	}
	return Load(data)
}

// Load parses a YAML article collection.
func Load(data []byte) (*Store, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse articles: %w", err)
	}
	if len(f.Articles) == 0 {
		return nil, errors.New("no articles defined")
	}

	records := make([]Record, 0, len(f.Articles))
	for i, a := range f.Articles {
		title := strings.TrimSpace(a.Title)
		if title == "" {
			return nil, fmt.Errorf("article %d: title is required", i)
		}

		tags := a.Tags
		if len(tags) == 0 {
			tags = DefaultTags
		}

		published := true
		if a.Published != nil {
			published = *a.Published
		}

		records = append(records, Record{
			Title:        title,
			Body:         a.Body,
			Tags:         slices.Clone(tags),
			Published:    published,
			CanonicalURL: a.CanonicalURL,
			Description:  a.Description,
		})
	}

	return &Store{records: records}, nil
}

func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record at index i.
func (s *Store) Get(i int) (Record, error) {
	if i < 0 || i >= len(s.records) {
		return Record{}, &IndexError{Index: i, Count: len(s.records)}
	}
	return s.records[i].clone(), nil
}

// Random returns a record chosen uniformly.
func (s *Store) Random() Record {
	return s.records[rand.IntN(len(s.records))].clone()
}

// Titles returns every title in storage order.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.records))
	for i, r := range s.records {
		titles[i] = r.Title
	}
	return titles
}

func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.clone()
	}
	return out
}

func (r Record) clone() Record {
	r.Tags = slices.Clone(r.Tags)
	return r
}
