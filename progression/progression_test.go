package progression

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndRealizeTwoFiveOne(t *testing.T) {
	assert := assert.New(t)

	path := writeDoc(t, `
anchor: C4
omit_root: true
chords:
  - Dm9/D
  - G13/G
  - Cmaj9/C
`)

	doc, err := Load(path)
	assert.NoError(err)
	assert.Equal("C4", doc.Anchor)
	assert.True(doc.OmitRoot)
	assert.Len(doc.Chords, 3)

	entries, err := doc.Realize()
	assert.NoError(err)
	assert.Len(entries, 3)

	// the ii chord: m9 without a root voices four tones plus the bass
	assert.Equal("Dm9/D", entries[0].Symbol.String())
	assert.Equal([]int{50, 57, 60, 64, 65}, entries[0].Chord.Midis())

	for _, e := range entries {
		assert.NotEmpty(e.Chord.Pitches)
	}
}

func TestLoadRejectsEmptyAndUnreadableDocs(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)

	path := writeDoc(t, "anchor: C4\nchords: []\n")
	_, err = Load(path)
	assert.Error(err)

	path = writeDoc(t, "chords: [not: valid\n")
	_, err = Load(path)
	assert.Error(err)
}

func TestRealizeSurfacesBadSymbolsAndSizes(t *testing.T) {
	assert := assert.New(t)

	path := writeDoc(t, "chords: [Cfoo]\n")
	doc, err := Load(path)
	assert.NoError(err)
	_, err = doc.Realize()
	assert.Error(err)

	path = writeDoc(t, "max_notes: 1\nchords: [C]\n")
	doc, err = Load(path)
	assert.NoError(err)
	_, err = doc.Realize()
	assert.Error(err)
}
