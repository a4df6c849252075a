// Package categorizer suggests a category label for an entry memo.
// Matching is done on ordered keyword groups where the first matching group wins,
// optionally followed by an AI fallback when keyword matching finds nothing.
package categorizer

import (
	"strings"

	"fjacquet/kakeibo/internal/models"
)

// DefaultGroups returns the built-in keyword groups in precedence order.
func DefaultGroups() []models.CategoryConfig {
	return []models.CategoryConfig{
		{
			Name: models.CategoryFood,
			Keywords: []string{
				"スーパー", "コンビニ", "ランチ", "外食", "弁当",
				"supermarket", "convenience store", "lunch", "dining out", "restaurant", "bento",
			},
		},
		{
			Name: models.CategoryTransport,
			Keywords: []string{
				"電車", "バス", "タクシー", "定期",
				"train ticket", "train fare", "bus fare", "taxi", "commuter pass",
			},
		},
		{
			Name: models.CategoryDailyGoods,
			Keywords: []string{
				"amazon", "薬", "日用品", "ドラッグストア",
				"medicine", "drugstore", "pharmacy", "sundries",
			},
		},
		{
			Name: models.CategoryUtilities,
			Keywords: []string{
				"電気", "ガス", "水道", "携帯",
				"electricity", "gas bill", "water bill", "mobile phone",
			},
		},
	}
}

type keywordGroup struct {
	label    string
	keywords []string
}

// Classifier maps a memo to a category label by substring matching.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	groups []keywordGroup
}

// NewClassifier builds a classifier from groups in precedence order.
// Groups without a name and blank keywords are skipped.
// An empty group list yields the default groups.
func NewClassifier(groups []models.CategoryConfig) *Classifier {
	if len(groups) == 0 {
		groups = DefaultGroups()
	}

	c := &Classifier{groups: make([]keywordGroup, 0, len(groups))}
	for _, g := range groups {
		label := strings.TrimSpace(g.Name)
		if label == "" {
			continue
		}
		kg := keywordGroup{label: label}
		for _, kw := range g.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kg.keywords = append(kg.keywords, kw)
			}
		}
		c.groups = append(c.groups, kg)
	}
	return c
}

// Classify returns the label of the first group having a keyword contained in memo.
// Matching is case-insensitive. The boolean is false when no group matches.
func (c *Classifier) Classify(memo string) (string, bool) {
	label, _, ok := c.match(memo)
	return label, ok
}

// match is Classify that also reports the keyword that fired
func (c *Classifier) match(memo string) (string, string, bool) {
	text := strings.ToLower(memo)
	if strings.TrimSpace(text) == "" {
		return "", "", false
	}
	for _, g := range c.groups {
		for _, kw := range g.keywords {
			if strings.Contains(text, kw) {
				return g.label, kw, true
			}
		}
	}
	return "", "", false
}

// Labels returns the group labels in precedence order
func (c *Classifier) Labels() []string {
	labels := make([]string, 0, len(c.groups))
	for _, g := range c.groups {
		labels = append(labels, g.label)
	}
	return labels
}
