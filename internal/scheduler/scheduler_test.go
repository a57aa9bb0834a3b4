package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/setlocale/internal/database"
	"github.com/example/setlocale/pkg/models"
)

func TestRecountTranslations(t *testing.T) {
	db, err := database.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := database.NewWordRepository(db)

	// counter drifted low
	drifted := &models.Word{
		Key:              "drifted",
		TranslationCount: 0,
		IsTranslated:     false,
		TranslationEN:    "hello",
		TranslationRU:    "привет",
	}
	require.NoError(t, repo.Create(drifted))

	// already consistent
	fine := &models.Word{
		Key:              "fine",
		TranslationCount: 1,
		IsTranslated:     true,
		TranslationTR:    "merhaba",
	}
	require.NoError(t, repo.Create(fine))

	s := New(repo, 3)
	s.recountTranslations()

	word, err := repo.FindByKey("drifted")
	require.NoError(t, err)
	assert.Equal(t, 2, word.TranslationCount)
	assert.True(t, word.IsTranslated)

	word, err = repo.FindByKey("fine")
	require.NoError(t, err)
	assert.Equal(t, 1, word.TranslationCount)
	assert.True(t, word.IsTranslated)
}

func TestRecountKeepsImportedFlag(t *testing.T) {
	db, err := database.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := database.NewWordRepository(db)

	// imported rows are marked translated even without values; the
	// recount must not undo that
	imported := &models.Word{Key: "imported", IsTranslated: true}
	require.NoError(t, repo.Create(imported))

	s := New(repo, 3)
	s.recountTranslations()

	word, err := repo.FindByKey("imported")
	require.NoError(t, err)
	assert.True(t, word.IsTranslated)
	assert.Equal(t, 0, word.TranslationCount)
}
