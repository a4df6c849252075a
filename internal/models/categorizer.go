package models

// CategoryConfig represents a keyword group in the categories YAML file.
// The order of groups in the file is their matching precedence.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Color    string   `yaml:"color,omitempty"`
}

// CategoriesConfig represents the structure of the categories YAML file
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// CategoryMeta holds the display metadata of a category
type CategoryMeta struct {
	Tag   string `json:"tag" yaml:"tag"`
	Color string `json:"color" yaml:"color"`
}

// CategoryMetaTable maps category labels to display metadata
type CategoryMetaTable map[string]CategoryMeta

// DefaultCategoryMeta returns a fresh table holding the built-in categories
func DefaultCategoryMeta() CategoryMetaTable {
	return CategoryMetaTable{
		CategoryFood:       {Tag: "tag-food", Color: "#ffe0b2"},
		CategoryTransport:  {Tag: "tag-transport", Color: "#bbdefb"},
		CategoryDailyGoods: {Tag: "tag-daily", Color: "#e1bee7"},
		CategoryUtilities:  {Tag: "tag-utilities", Color: "#fff9c4"},
		CategoryOther:      {Tag: "tag-other", Color: "#f5f5f5"},
	}
}

// NewCategoryMetaTable returns the built-in table extended with the colors of
// the configured groups. Groups without a color keep the default metadata.
func NewCategoryMetaTable(groups []CategoryConfig) CategoryMetaTable {
	table := DefaultCategoryMeta()
	for _, g := range groups {
		if g.Name == "" || g.Color == "" {
			continue
		}
		meta := table.Lookup(g.Name)
		meta.Color = g.Color
		table[g.Name] = meta
	}
	return table
}

// Lookup returns the metadata for label.
// Empty and unknown labels share the "Other" metadata; a nil table uses the defaults.
func (t CategoryMetaTable) Lookup(label string) CategoryMeta {
	if t == nil {
		t = DefaultCategoryMeta()
	}
	if meta, ok := t[label]; ok {
		return meta
	}
	if meta, ok := t[CategoryOther]; ok {
		return meta
	}
	return DefaultCategoryMeta()[CategoryOther]
}

// MetaFor returns the built-in display metadata for a category label
func MetaFor(label string) CategoryMeta {
	return DefaultCategoryMeta().Lookup(label)
}
