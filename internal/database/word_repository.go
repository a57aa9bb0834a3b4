package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/setlocale/pkg/models"
)

// WordRepository handles database operations for words and their tags
type WordRepository struct {
	db *sqlx.DB
}

// NewWordRepository creates a new repository instance
func NewWordRepository(db *sqlx.DB) *WordRepository {
	return &WordRepository{db: db}
}

const wordColumns = `id, key, description, translation_count, is_translated,
	translation_tr, translation_en, translation_az, translation_cn, translation_fr,
	translation_gr, translation_it, translation_kz, translation_ru, translation_sp,
	translation_tk, created_by, updated_by, created_at, updated_at`

// Create inserts a word together with its tags in one transaction
func (r *WordRepository) Create(word *models.Word) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO words (key, description, translation_count, is_translated,
			translation_tr, translation_en, translation_az, translation_cn, translation_fr,
			translation_gr, translation_it, translation_kz, translation_ru, translation_sp,
			translation_tk, created_by, updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := []interface{}{
		word.Key, word.Description, word.TranslationCount, word.IsTranslated,
		word.TranslationTR, word.TranslationEN, word.TranslationAZ, word.TranslationCN,
		word.TranslationFR, word.TranslationGR, word.TranslationIT, word.TranslationKZ,
		word.TranslationRU, word.TranslationSP, word.TranslationTK,
		word.CreatedBy, word.UpdatedBy,
	}

	if r.db.DriverName() == "postgres" {
		err = tx.QueryRow(r.db.Rebind(query+" RETURNING id"), args...).Scan(&word.ID)
		if err != nil {
			return fmt.Errorf("failed to create word: %v", err)
		}
	} else {
		result, err := tx.Exec(r.db.Rebind(query), args...)
		if err != nil {
			return fmt.Errorf("failed to create word: %v", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		word.ID = id
	}

	for i := range word.Tags {
		word.Tags[i].WordID = word.ID
		if err := insertTag(tx, r.db, &word.Tags[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit word: %v", err)
	}
	return nil
}

// Update modifies an existing word's mutable fields
func (r *WordRepository) Update(word *models.Word) error {
	query := r.db.Rebind(`
		UPDATE words SET
			description = ?,
			translation_count = ?,
			is_translated = ?,
			translation_tr = ?, translation_en = ?, translation_az = ?, translation_cn = ?,
			translation_fr = ?, translation_gr = ?, translation_it = ?, translation_kz = ?,
			translation_ru = ?, translation_sp = ?, translation_tk = ?,
			updated_by = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`)

	_, err := r.db.Exec(query,
		word.Description, word.TranslationCount, word.IsTranslated,
		word.TranslationTR, word.TranslationEN, word.TranslationAZ, word.TranslationCN,
		word.TranslationFR, word.TranslationGR, word.TranslationIT, word.TranslationKZ,
		word.TranslationRU, word.TranslationSP, word.TranslationTK,
		word.UpdatedBy, word.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update word: %v", err)
	}
	return nil
}

// UpdateCounters rewrites the completion metadata of a word
func (r *WordRepository) UpdateCounters(id int64, translationCount int, isTranslated bool) error {
	query := r.db.Rebind(`
		UPDATE words SET translation_count = ?, is_translated = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`)
	if _, err := r.db.Exec(query, translationCount, isTranslated, id); err != nil {
		return fmt.Errorf("failed to update word counters: %v", err)
	}
	return nil
}

// AddTag attaches one more tag to a word
func (r *WordRepository) AddTag(wordID int64, tag *models.Tag) error {
	tag.WordID = wordID
	return insertTag(r.db, r.db, tag)
}

// execer covers both *sqlx.DB and *sqlx.Tx
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

func insertTag(e execer, db *sqlx.DB, tag *models.Tag) error {
	query := `INSERT INTO tags (word_id, name, url_name, created_by) VALUES (?, ?, ?, ?)`

	if db.DriverName() == "postgres" {
		err := e.QueryRow(db.Rebind(query+" RETURNING id"),
			tag.WordID, tag.Name, tag.URLName, tag.CreatedBy).Scan(&tag.ID)
		if err != nil {
			return fmt.Errorf("failed to create tag: %v", err)
		}
		return nil
	}

	result, err := e.Exec(db.Rebind(query), tag.WordID, tag.Name, tag.URLName, tag.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to create tag: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	tag.ID = id
	return nil
}

// FindByKey returns the word with the exact key, tags included, or nil
// when no such word exists
func (r *WordRepository) FindByKey(key string) (*models.Word, error) {
	var word models.Word
	query := r.db.Rebind("SELECT " + wordColumns + " FROM words WHERE key = ?")
	err := r.db.Get(&word, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word by key: %v", err)
	}

	if err := r.attachTags([]*models.Word{&word}); err != nil {
		return nil, err
	}
	return &word, nil
}

// KeyExists reports whether any word already uses the key
func (r *WordRepository) KeyExists(key string) (bool, error) {
	var count int
	query := r.db.Rebind("SELECT COUNT(1) FROM words WHERE key = ?")
	if err := r.db.Get(&count, query, key); err != nil {
		return false, fmt.Errorf("failed to check word key: %v", err)
	}
	return count > 0, nil
}

// CountAll returns the total number of words
func (r *WordRepository) CountAll() (int64, error) {
	return r.count("SELECT COUNT(1) FROM words")
}

// ListAll returns one page of words, most recently created first
func (r *WordRepository) ListAll(limit, offset int) ([]models.Word, error) {
	return r.list("SELECT "+wordColumns+" FROM words ORDER BY id DESC LIMIT ? OFFSET ?", limit, offset)
}

// CountByAuthor returns the number of words created by the user
func (r *WordRepository) CountByAuthor(userID int64) (int64, error) {
	return r.count("SELECT COUNT(1) FROM words WHERE created_by = ?", userID)
}

// ListByAuthor returns one page of the user's words, most recent first
func (r *WordRepository) ListByAuthor(userID int64, limit, offset int) ([]models.Word, error) {
	return r.list("SELECT "+wordColumns+" FROM words WHERE created_by = ? ORDER BY id DESC LIMIT ? OFFSET ?",
		userID, limit, offset)
}

// CountNotTranslated returns the number of words without any completed translation round
func (r *WordRepository) CountNotTranslated() (int64, error) {
	return r.count("SELECT COUNT(1) FROM words WHERE is_translated = ?", false)
}

// ListNotTranslated returns one page of untranslated words, most recent first
func (r *WordRepository) ListNotTranslated(limit, offset int) ([]models.Word, error) {
	return r.list("SELECT "+wordColumns+" FROM words WHERE is_translated = ? ORDER BY id DESC LIMIT ? OFFSET ?",
		false, limit, offset)
}

// All returns every word without paging, tags included
func (r *WordRepository) All() ([]models.Word, error) {
	return r.list("SELECT " + wordColumns + " FROM words ORDER BY id DESC")
}

func (r *WordRepository) count(query string, args ...interface{}) (int64, error) {
	var count int64
	if err := r.db.Get(&count, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count words: %v", err)
	}
	return count, nil
}

func (r *WordRepository) list(query string, args ...interface{}) ([]models.Word, error) {
	var words []models.Word
	if err := r.db.Select(&words, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get words: %v", err)
	}

	refs := make([]*models.Word, len(words))
	for i := range words {
		refs[i] = &words[i]
	}
	if err := r.attachTags(refs); err != nil {
		return nil, err
	}
	return words, nil
}

// attachTags loads the tags for all given words in one query
func (r *WordRepository) attachTags(words []*models.Word) error {
	if len(words) == 0 {
		return nil
	}

	ids := make([]int64, len(words))
	byID := make(map[int64]*models.Word, len(words))
	for i, word := range words {
		ids[i] = word.ID
		byID[word.ID] = word
	}

	query, args, err := sqlx.In(
		"SELECT id, word_id, name, url_name, created_by, created_at FROM tags WHERE word_id IN (?) ORDER BY id", ids)
	if err != nil {
		return fmt.Errorf("failed to build tags query: %v", err)
	}

	var tags []models.Tag
	if err := r.db.Select(&tags, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to get tags: %v", err)
	}

	for _, tag := range tags {
		word := byID[tag.WordID]
		word.Tags = append(word.Tags, tag)
	}
	return nil
}
