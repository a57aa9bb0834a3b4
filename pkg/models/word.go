package models

import (
	"strings"
	"time"
)

// Word represents a localization key with its per-language translations
type Word struct {
	ID               int64     `json:"id" db:"id"`
	Key              string    `json:"key" db:"key"`
	Description      string    `json:"description" db:"description"`
	TranslationCount int       `json:"translation_count" db:"translation_count"`
	IsTranslated     bool      `json:"is_translated" db:"is_translated"`
	TranslationTR    string    `json:"translation_tr" db:"translation_tr"`
	TranslationEN    string    `json:"translation_en" db:"translation_en"`
	TranslationAZ    string    `json:"translation_az" db:"translation_az"`
	TranslationCN    string    `json:"translation_cn" db:"translation_cn"`
	TranslationFR    string    `json:"translation_fr" db:"translation_fr"`
	TranslationGR    string    `json:"translation_gr" db:"translation_gr"`
	TranslationIT    string    `json:"translation_it" db:"translation_it"`
	TranslationKZ    string    `json:"translation_kz" db:"translation_kz"`
	TranslationRU    string    `json:"translation_ru" db:"translation_ru"`
	TranslationSP    string    `json:"translation_sp" db:"translation_sp"`
	TranslationTK    string    `json:"translation_tk" db:"translation_tk"`
	CreatedBy        int64     `json:"created_by" db:"created_by"`
	UpdatedBy        int64     `json:"updated_by" db:"updated_by"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
	Tags             []Tag     `json:"tags" db:"-"`
}

// translationField returns a pointer to the translation field for a
// language code, or nil if the code is not supported.
func (w *Word) translationField(code string) *string {
	switch strings.ToLower(code) {
	case LanguageTR:
		return &w.TranslationTR
	case LanguageEN:
		return &w.TranslationEN
	case LanguageAZ:
		return &w.TranslationAZ
	case LanguageCN:
		return &w.TranslationCN
	case LanguageFR:
		return &w.TranslationFR
	case LanguageGR:
		return &w.TranslationGR
	case LanguageIT:
		return &w.TranslationIT
	case LanguageKZ:
		return &w.TranslationKZ
	case LanguageRU:
		return &w.TranslationRU
	case LanguageSP:
		return &w.TranslationSP
	case LanguageTK:
		return &w.TranslationTK
	}
	return nil
}

// SetTranslation stores value for the given language code and reports
// whether the code matched a supported language
func (w *Word) SetTranslation(code, value string) bool {
	field := w.translationField(code)
	if field == nil {
		return false
	}
	*field = value
	return true
}

// Translation returns the stored value for the given language code
func (w *Word) Translation(code string) (string, bool) {
	field := w.translationField(code)
	if field == nil {
		return "", false
	}
	return *field, true
}

// TranslationValue returns the stored value for the code, or "" when
// the code is not supported. Single-valued so templates can call it.
func (w *Word) TranslationValue(code string) string {
	value, _ := w.Translation(code)
	return value
}

// PopulatedTranslationCount counts the non-empty translation fields
func (w *Word) PopulatedTranslationCount() int {
	count := 0
	for _, lang := range Languages() {
		if value, _ := w.Translation(lang.Code); value != "" {
			count++
		}
	}
	return count
}

// HasTag reports whether the word already carries a tag with the given name
func (w *Word) HasTag(name string) bool {
	for _, tag := range w.Tags {
		if tag.Name == name {
			return true
		}
	}
	return false
}
