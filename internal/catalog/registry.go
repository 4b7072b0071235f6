// Package catalog holds the fixed category taxonomies for portfolio items
// and blog posts, loaded from an embedded YAML file at startup.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Kind names a taxonomy.
type Kind string

const (
	KindPortfolio Kind = "portfolio"
	KindBlog      Kind = "blog"
)

// Category is one allowed value in a taxonomy.
type Category struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Registry holds the allowed categories per taxonomy.
type Registry struct {
	kinds map[Kind][]Category
}

type categoriesFile struct {
	Portfolio []Category `yaml:"portfolio"`
	Blog      []Category `yaml:"blog"`
}

// NewRegistry loads the embedded category taxonomies.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/categories.yaml")
	if err != nil {
		return nil, fmt.Errorf("read categories config: %w", err)
	}

	var file categoriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse categories config: %w", err)
	}
	if len(file.Portfolio) == 0 || len(file.Blog) == 0 {
		return nil, fmt.Errorf("categories config is incomplete")
	}

	return &Registry{kinds: map[Kind][]Category{
		KindPortfolio: file.Portfolio,
		KindBlog:      file.Blog,
	}}, nil
}

// Categories returns the allowed categories for a taxonomy, in config
// order.
func (r *Registry) Categories(kind Kind) []Category {
	return r.kinds[kind]
}

// Valid reports whether value is an allowed category of the taxonomy.
func (r *Registry) Valid(kind Kind, value string) bool {
	for _, c := range r.kinds[kind] {
		if c.Value == value {
			return true
		}
	}
	return false
}
