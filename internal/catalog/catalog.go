// Package catalog holds the closed intent catalog: a static mapping from
// intent name to handling category, validated for disjointness at load.
package catalog

// #region imports
import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region catalog-struct

// Catalog maps intent names to categories. Immutable after construction;
// anything unlisted categorizes as fallback.
type Catalog struct {
	categories map[string]Category
}

// New builds a catalog from the two intent lists. Building fails if any
// name is blank or appears in both lists.
func New(actions, knowledge []string) (*Catalog, error) {
	categories := make(map[string]Category, len(actions)+len(knowledge))
	for _, intent := range actions {
		if strings.TrimSpace(intent) == "" {
			return nil, fmt.Errorf("blank intent name in action list")
		}
		categories[intent] = CategoryAction
	}
	for _, intent := range knowledge {
		if strings.TrimSpace(intent) == "" {
			return nil, fmt.Errorf("blank intent name in knowledge list")
		}
		if categories[intent] == CategoryAction {
			return nil, fmt.Errorf("intent %q appears in both action and knowledge lists", intent)
		}
		categories[intent] = CategoryKnowledge
	}
	return &Catalog{categories: categories}, nil
}

// Categorize returns the category for an intent, CategoryFallback when
// the intent is not in the catalog.
func (c *Catalog) Categorize(intent string) Category {
	if cat, ok := c.categories[intent]; ok {
		return cat
	}
	return CategoryFallback
}

// Size returns the number of cataloged intents.
func (c *Catalog) Size() int {
	return len(c.categories)
}

// #endregion catalog-struct

// #region load-file

type catalogFile struct {
	ActionIntents    []string `yaml:"action_intents"`
	KnowledgeIntents []string `yaml:"knowledge_intents"`
}

// LoadFile reads a catalog override from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	cat, err := New(cf.ActionIntents, cf.KnowledgeIntents)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// #endregion load-file

// #region default

// Default returns the built-in banking catalog.
func Default() *Catalog {
	cat, err := New(defaultActionIntents, defaultKnowledgeIntents)
	if err != nil {
		// The built-in lists are static; failing to build them is a bug.
		panic(err)
	}
	return cat
}

// #endregion default
