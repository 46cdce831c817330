package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePanel(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestIsPanelFile(t *testing.T) {
	assert.True(t, IsPanelFile("01-intro.md"))
	assert.True(t, IsPanelFile("notes.TXT"))
	assert.True(t, IsPanelFile("/abs/path/a.md"))
	assert.False(t, IsPanelFile(".swipe.toml"))
	assert.False(t, IsPanelFile(".hidden.md"))
	assert.False(t, IsPanelFile("image.png"))
}

func TestParsePanelWithFrontMatter(t *testing.T) {
	data := "---\ntitle: Welcome\ncolor: \"#ff0000\"\n---\nhello\nworld\n\n"
	p, err := ParsePanel("01-intro.md", []byte(data))
	require.NoError(t, err)

	assert.Equal(t, "01-intro", p.Name)
	assert.Equal(t, "Welcome", p.Title)
	assert.Equal(t, "#ff0000", p.Color)
	assert.Equal(t, "hello\nworld", p.Body)
	assert.Equal(t, "Welcome", p.DisplayTitle())
}

func TestParsePanelWithoutFrontMatter(t *testing.T) {
	p, err := ParsePanel("plain.txt", []byte("just text\r\nsecond\r\n"))
	require.NoError(t, err)

	assert.Equal(t, "plain", p.Name)
	assert.Empty(t, p.Title)
	assert.Equal(t, "just text\nsecond", p.Body)
	assert.Equal(t, "plain", p.DisplayTitle())
}

func TestParsePanelUnterminatedFrontMatterIsBody(t *testing.T) {
	p, err := ParsePanel("a.md", []byte("---\ntitle: x\nno end"))
	require.NoError(t, err)
	assert.Empty(t, p.Title)
	assert.Equal(t, "---\ntitle: x\nno end", p.Body)
}

func TestParsePanelBadYAML(t *testing.T) {
	_, err := ParsePanel("a.md", []byte("---\ntitle: [unclosed\n---\nbody"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "front matter of a.md")
}

func TestLoadPanelsSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	writePanel(t, dir, "b.md", "B")
	writePanel(t, dir, "a.txt", "A")
	writePanel(t, dir, "c.png", "not a panel")
	writePanel(t, dir, ".swipe.toml", "[swiper]")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0755))

	set, err := LoadPanels(dir)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"a", "b"}, set.Titles())
	assert.Equal(t, filepath.Join(dir, "a.txt"), set.Panels[0].Path)

	_, ok := set.At(2)
	assert.False(t, ok)
}

func TestLoadPanelsMissingDir(t *testing.T) {
	_, err := LoadPanels(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
