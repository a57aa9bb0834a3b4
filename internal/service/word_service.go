package service

import (
	"strings"

	"github.com/example/setlocale/internal/database"
	"github.com/example/setlocale/pkg/models"
	"github.com/example/setlocale/pkg/slug"
)

// tagCreatorPlaceholder stamps tags created through the tag form, which
// carries no author information.
const tagCreatorPlaceholder = 1

// WordService implements word creation, the paged word queries and the
// translation and tag mutators. Expected domain conditions (duplicate
// key, missing word, unknown language) come back as zero-value results,
// not errors; errors are reserved for the store failing.
type WordService struct {
	words    *database.WordRepository
	pageSize int
}

// NewWordService creates a word service using the given page size for
// all paged queries
func NewWordService(words *database.WordRepository, pageSize int) *WordService {
	return &WordService{words: words, pageSize: pageSize}
}

// Create validates and persists a candidate word. It returns the
// normalized key of the new word, or "" when the candidate is invalid,
// the key is already taken, or the store rejects the write.
func (s *WordService) Create(in WordInput) (string, error) {
	if !in.Valid() {
		return "", nil
	}

	key := slug.Make(in.Key)
	if key == "" {
		return "", nil
	}

	exists, err := s.words.KeyExists(key)
	if err != nil {
		return "", err
	}
	if exists {
		return "", nil
	}

	word := models.Word{
		Key:              key,
		Description:      in.Description,
		IsTranslated:     in.IsTranslated,
		TranslationCount: len(in.Translations),
		CreatedBy:        in.CreatedBy,
		UpdatedBy:        in.CreatedBy,
		Tags:             parseTags(in.Tags, in.CreatedBy),
	}

	if in.IsTranslated {
		for _, t := range in.Translations {
			// entries with unrecognized codes are dropped
			word.SetTranslation(t.Language, t.Value)
		}
	}

	if err := s.words.Create(&word); err != nil {
		return "", err
	}
	return word.Key, nil
}

// parseTags splits a comma-separated tag list, dropping empty tokens
func parseTags(tags string, createdBy int64) []models.Tag {
	var result []models.Tag
	for _, item := range strings.Split(tags, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		result = append(result, models.Tag{
			Name:      item,
			URLName:   slug.Make(item),
			CreatedBy: createdBy,
		})
	}
	return result
}

// GetWords returns one page of all words
func (s *WordService) GetWords(page int) (*models.PagedList[models.Word], error) {
	return pagedQuery(page, s.pageSize, s.words.CountAll, s.words.ListAll)
}

// GetByUserID returns one page of the words created by the user, or nil
// for an invalid user id
func (s *WordService) GetByUserID(userID int64, page int) (*models.PagedList[models.Word], error) {
	if userID < 1 {
		return nil, nil
	}
	return pagedQuery(page, s.pageSize,
		func() (int64, error) { return s.words.CountByAuthor(userID) },
		func(limit, offset int) ([]models.Word, error) { return s.words.ListByAuthor(userID, limit, offset) })
}

// GetNotTranslated returns one page of the words without any completed
// translation round
func (s *WordService) GetNotTranslated(page int) (*models.PagedList[models.Word], error) {
	return pagedQuery(page, s.pageSize, s.words.CountNotTranslated, s.words.ListNotTranslated)
}

// GetByKey returns the word with the exact key, or nil when none matches
func (s *WordService) GetByKey(key string) (*models.Word, error) {
	return s.words.FindByKey(key)
}

// GetAll returns every word without paging
func (s *WordService) GetAll() ([]models.Word, error) {
	return s.words.All()
}

// Translate writes one language's value onto a word and updates its
// completion metadata. It reports false for empty inputs, a missing
// word or an unrecognized language code.
func (s *WordService) Translate(key, language, translation string) (bool, error) {
	if key == "" || language == "" || translation == "" {
		return false, nil
	}

	word, err := s.words.FindByKey(key)
	if err != nil {
		return false, err
	}
	if word == nil {
		return false, nil
	}

	if !word.SetTranslation(language, translation) {
		return false, nil
	}
	word.TranslationCount++
	word.IsTranslated = true

	if err := s.words.Update(word); err != nil {
		return false, err
	}
	return true, nil
}

// Tag attaches a tag to a word. It reports false for empty inputs, a
// missing word, or a word that already carries a tag with that name.
func (s *WordService) Tag(key, tagName string) (bool, error) {
	if key == "" || tagName == "" {
		return false, nil
	}

	word, err := s.words.FindByKey(key)
	if err != nil {
		return false, err
	}
	if word == nil || word.HasTag(tagName) {
		return false, nil
	}

	tag := models.Tag{
		Name:      tagName,
		URLName:   slug.Make(tagName),
		CreatedBy: tagCreatorPlaceholder,
	}
	if err := s.words.AddTag(word.ID, &tag); err != nil {
		return false, err
	}
	return true, nil
}
