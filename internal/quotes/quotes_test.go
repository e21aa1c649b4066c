package quotes

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	qm, err := Load("")
	require.NoError(t, err)
	require.NotEmpty(t, qm.Quotes)

	first := qm.Quotes[0]
	assert.Equal(t, "Your body can stand almost anything. It’s your mind you have to convince.", first.Text)
	assert.Equal(t, "fitness", first.Genre)
	assert.NotEmpty(t, qm.GenresQuotes["health"])

	for i := 0; i < 20; i++ {
		assert.Contains(t, qm.Quotes, qm.RandomQuote())
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.csv")
	require.NoError(t, os.WriteFile(path, []byte("Keep going;Me;motivation\n"), 0o600))

	qm, err := Load(path)
	require.NoError(t, err)
	require.Len(t, qm.Quotes, 1)
	assert.Equal(t, "Me", qm.RandomQuote().Author)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestRandomQuote_PrefersPlanGenres(t *testing.T) {
	csvContent := "Love is all;Someone;love\nRun every day;Coach;fitness\nEat greens;Doc;health\n"
	qm, err := NewManager(csv.NewReader(strings.NewReader(csvContent)))
	require.NoError(t, err)
	require.Len(t, qm.GenresQuotes["love"], 1)

	for i := 0; i < 50; i++ {
		assert.NotEqual(t, "love", qm.RandomQuote().Genre)
	}

	qm, err = NewManager(csv.NewReader(strings.NewReader("Love is all;Someone;love\n")))
	require.NoError(t, err)
	assert.Equal(t, "Someone", qm.RandomQuote().Author)
}

func TestNewManager_Invalid(t *testing.T) {
	_, err := NewManager(csv.NewReader(strings.NewReader("only;two\n")))
	assert.Error(t, err)

	_, err = NewManager(csv.NewReader(strings.NewReader("")))
	assert.Error(t, err)
}

func TestMotivational(t *testing.T) {
	q := &Quote{Text: "Sleep is the best meditation."}
	assert.Equal(t, "🌟 *“Sleep is the best meditation.”*", Motivational(q))
}
