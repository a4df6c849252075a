package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func TestNewCategoryStore(t *testing.T) {
	store := NewCategoryStore("categories.yaml", logging.NewMockLogger())
	assert.Equal(t, "categories.yaml", store.CategoriesFile)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "test.yaml")
	writeFile(t, testFile, "test content")

	store := NewCategoryStore("", logging.NewMockLogger())

	file, err := store.FindConfigFile(testFile)
	assert.NoError(t, err)
	assert.Equal(t, testFile, file)

	_, err = store.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadCategories_TopLevelList(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	writeFile(t, file, `- name: Food
  keywords: ["スーパー", "lunch"]
  color: "#ffe0b2"
- name: Hobby
  keywords: ["映画"]
`)

	cats, err := NewCategoryStore(file, logging.NewMockLogger()).LoadCategories()
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Food", cats[0].Name)
	assert.Equal(t, "#ffe0b2", cats[0].Color)
	assert.Equal(t, []string{"映画"}, cats[1].Keywords)
}

func TestLoadCategories_CategoriesKey(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	writeFile(t, file, `categories:
  - name: Transport
    keywords: ["電車"]
`)

	cats, err := NewCategoryStore(file, logging.NewMockLogger()).LoadCategories()
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Transport", cats[0].Name)
}

func TestLoadCategories_Missing(t *testing.T) {
	store := NewCategoryStore(filepath.Join(t.TempDir(), "missing.yaml"), logging.NewMockLogger())
	cats, err := store.LoadCategories()
	assert.NoError(t, err)
	assert.Empty(t, cats)
}

func TestLoadCategories_Malformed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	writeFile(t, file, `{malformed: yaml: content}`)

	_, err := NewCategoryStore(file, logging.NewMockLogger()).LoadCategories()
	assert.Error(t, err)
}

func TestSaveCategories_RoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "categories.yaml")
	store := NewCategoryStore(file, logging.NewMockLogger())

	groups := []models.CategoryConfig{
		{Name: "Food", Keywords: []string{"弁当"}},
		{Name: "Pets", Keywords: []string{"ペット"}, Color: "#dcedc8"},
	}
	require.NoError(t, store.SaveCategories(groups))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := store.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, groups, loaded)
}
