package excel

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/example/setlocale/internal/database"
	"github.com/example/setlocale/internal/service"
)

func newTestImporter(t *testing.T) (*Importer, *service.WordService) {
	t.Helper()
	db, err := database.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	words := service.NewWordService(database.NewWordRepository(db), 10)
	return NewImporter(words), words
}

// writeSheet builds an xlsx file with the given header and data rows
// and returns its path
func writeSheet(t *testing.T, header []string, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	writeRow := func(rowNum int, values []string) {
		for col, value := range values {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	writeRow(1, header)
	for i, row := range rows {
		writeRow(i+2, row)
	}

	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// wordRow lays out one data row: key, description, tags, count, then
// translations for the first len(translations) languages
func wordRow(key, description, tags, count string, translations ...string) []string {
	row := []string{key, description, tags, count}
	return append(row, translations...)
}

func TestImportAddsWords(t *testing.T) {
	importer, words := newTestImporter(t)

	path := writeSheet(t, expectedHeaders(), [][]string{
		wordRow("btn-save", "save button", "ui,buttons", "2", "Kaydet", "Save"),
		wordRow("btn-cancel", "", "", "1", "Vazgeç"),
	})

	result, err := importer.ImportFile(path, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, "Added new words: 2.", result.Summary())

	word, err := words.GetByKey("btn-save")
	require.NoError(t, err)
	require.NotNil(t, word)
	assert.Equal(t, "save button", word.Description)
	assert.Equal(t, "Kaydet", word.TranslationTR)
	assert.Equal(t, "Save", word.TranslationEN)
	assert.True(t, word.IsTranslated)
	assert.Equal(t, int64(3), word.CreatedBy)
	require.Len(t, word.Tags, 2)
	assert.Equal(t, "buttons", word.Tags[1].Name)

	cancel, err := words.GetByKey("btn-cancel")
	require.NoError(t, err)
	require.NotNil(t, cancel)
	assert.Equal(t, "Vazgeç", cancel.TranslationTR)
	assert.Empty(t, cancel.TranslationEN)
}

func TestImportSkipsDuplicates(t *testing.T) {
	importer, words := newTestImporter(t)

	_, err := words.Create(service.WordInput{Key: "apple"})
	require.NoError(t, err)
	_, err = words.Create(service.WordInput{Key: "banana"})
	require.NoError(t, err)

	path := writeSheet(t, expectedHeaders(), [][]string{
		wordRow("apple", "", "", "0"),
		wordRow("cherry", "", "", "0"),
	})

	result, err := importer.ImportFile(path, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "Added new words: 1. Words skipped: 1.", result.Summary())

	list, err := words.GetWords(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.TotalCount)

	keys := make([]string, 0, 3)
	for _, w := range list.Items {
		keys = append(keys, w.Key)
	}
	assert.ElementsMatch(t, []string{"apple", "banana", "cherry"}, keys)
}

func TestImportDuplicateWithinSheet(t *testing.T) {
	importer, _ := newTestImporter(t)

	// the second occurrence must see the first row already inserted
	path := writeSheet(t, expectedHeaders(), [][]string{
		wordRow("pear", "", "", "0"),
		wordRow("pear", "", "", "0"),
	})

	result, err := importer.ImportFile(path, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Skipped)
}

func TestImportRejectsBadHeader(t *testing.T) {
	importer, words := newTestImporter(t)

	header := expectedHeaders()
	header[4] = "Turkish" // column 5 should be "TR translation"
	path := writeSheet(t, header, [][]string{
		wordRow("apple", "", "", "0"),
	})

	_, err := importer.ImportFile(path, 1)
	require.Error(t, err)

	var headerErr *HeaderError
	require.ErrorAs(t, err, &headerErr)
	assert.Equal(t, 5, headerErr.Column)
	assert.Equal(t, "TR translation", headerErr.Expected)
	assert.Contains(t, err.Error(), `"TR translation"`)

	// nothing was imported
	list, err := words.GetWords(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.TotalCount)
}

func TestImportRejectsWrongExtension(t *testing.T) {
	importer, _ := newTestImporter(t)

	_, err := importer.Import(strings.NewReader("a,b,c"), "words.csv", 1)
	assert.ErrorIs(t, err, ErrNotXLSX)
}

func TestImportSkipsBadRows(t *testing.T) {
	importer, _ := newTestImporter(t)

	path := writeSheet(t, expectedHeaders(), [][]string{
		wordRow("", "missing key", "", "0"),
		wordRow("valid", "", "", "not-a-number"),
		wordRow("other", "", "", "1", "Merhaba"),
	})

	result, err := importer.ImportFile(path, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 2, result.Skipped)
}

func TestExpectedHeaderLayout(t *testing.T) {
	headers := expectedHeaders()
	require.Len(t, headers, 15)
	assert.Equal(t, []string{"key", "description", "tags", "translation_count"}, headers[:4])
	assert.Equal(t, "TR translation", headers[4])
	assert.Equal(t, "TK translation", headers[14])
}
