// Package excel implements the word import pipeline: an uploaded xlsx
// workbook is admitted by extension, its first sheet's header row is
// validated against the expected column layout, and every data row is
// submitted for word creation independently. Failing rows are skipped
// and counted; they never abort the batch.
package excel

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/setlocale/internal/service"
	"github.com/example/setlocale/pkg/models"
)

// ErrNotXLSX rejects uploads whose file name is not *.xlsx
var ErrNotXLSX = errors.New("file format is incorrect, *.xlsx file expected")

// ErrNoWorksheet rejects workbooks without a single sheet
var ErrNoWorksheet = errors.New("no worksheets in selected file")

// HeaderError reports the first header cell that did not match the
// expected column layout
type HeaderError struct {
	Column   int
	Expected string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("column %d unrecognized, expected %q", e.Column, e.Expected)
}

// Result accumulates the per-row outcomes of one import
type Result struct {
	Added   int
	Skipped int
}

// Summary renders the message shown to the admin after an import
func (r Result) Summary() string {
	msg := fmt.Sprintf("Added new words: %d.", r.Added)
	if r.Skipped > 0 {
		msg = fmt.Sprintf("%s Words skipped: %d.", msg, r.Skipped)
	}
	return msg
}

// Importer reads word sheets and feeds their rows to word creation
type Importer struct {
	words   *service.WordService
	headers []string
}

// NewImporter creates an importer backed by the given word service
func NewImporter(words *service.WordService) *Importer {
	return &Importer{words: words, headers: expectedHeaders()}
}

// expectedHeaders returns the fixed 15-column header layout: key,
// description, tags, translation_count, then one column per language in
// the fixed order.
func expectedHeaders() []string {
	headers := []string{"key", "description", "tags", "translation_count"}
	for _, lang := range models.Languages() {
		headers = append(headers, strings.ToUpper(lang.Code)+" translation")
	}
	return headers
}

// ImportFile imports words from an xlsx file on disk
func (i *Importer) ImportFile(path string, createdBy int64) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer f.Close()

	return i.Import(f, filepath.Base(path), createdBy)
}

// Import imports words from an uploaded xlsx stream. filename is only
// used for the extension gate.
func (i *Importer) Import(r io.Reader, filename string, createdBy int64) (*Result, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return nil, ErrNotXLSX
	}

	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %v", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoWorksheet
	}

	if err := checkHeader(rows[0], i.headers); err != nil {
		return nil, err
	}

	// Rows are processed strictly in order: a row's uniqueness check must
	// see the rows inserted just before it in the same batch.
	result := &Result{}
	for rowNum := 2; rowNum <= len(rows); rowNum++ {
		input, err := mapRow(rows[rowNum-1], createdBy)
		if err != nil {
			log.Printf("import: row %d skipped: %v", rowNum, err)
			result.Skipped++
			continue
		}

		key, err := i.words.Create(input)
		if err != nil {
			log.Printf("import: row %d skipped: %v", rowNum, err)
			result.Skipped++
			continue
		}
		if key == "" {
			result.Skipped++
			continue
		}
		result.Added++
	}

	return result, nil
}

// checkHeader compares row 1 against the expected labels, failing on
// the first mismatch
func checkHeader(header, labels []string) error {
	for idx, expected := range labels {
		if cellAt(header, idx+1) != expected {
			return &HeaderError{Column: idx + 1, Expected: expected}
		}
	}
	return nil
}

// mapRow converts one data row into a word candidate
func mapRow(row []string, createdBy int64) (service.WordInput, error) {
	input := service.WordInput{
		Key:          strings.TrimSpace(cellAt(row, 1)),
		Description:  cellAt(row, 2),
		Tags:         cellAt(row, 3),
		IsTranslated: true,
		CreatedBy:    createdBy,
	}
	if input.Key == "" {
		return input, errors.New("key cannot be empty")
	}

	if countCell := strings.TrimSpace(cellAt(row, 4)); countCell != "" {
		if _, err := strconv.Atoi(countCell); err != nil {
			return input, fmt.Errorf("translation_count is not a number: %q", countCell)
		}
	}

	for idx, lang := range models.Languages() {
		if value := cellAt(row, 5+idx); value != "" {
			input.Translations = append(input.Translations, service.TranslationInput{
				Language: lang.Code,
				Value:    value,
			})
		}
	}

	return input, nil
}

// cellAt returns the 1-based column's cell text, or "" past the row's end
func cellAt(row []string, column int) string {
	if column < 1 || column > len(row) {
		return ""
	}
	return row[column-1]
}
