package service

import "strings"

// TranslationInput is one language's candidate value for a word
type TranslationInput struct {
	Language string
	Value    string
}

// WordInput is a candidate word submitted for creation, either from the
// new-word form or from one import sheet row
type WordInput struct {
	Key          string
	Description  string
	Tags         string // comma-separated tag names
	Translations []TranslationInput
	IsTranslated bool
	CreatedBy    int64
}

// Valid reports whether the candidate carries the required fields
func (in WordInput) Valid() bool {
	return strings.TrimSpace(in.Key) != ""
}

// UserInput is a candidate account submitted by the admin pages
type UserInput struct {
	Name     string
	Email    string
	Password string
	Language string
}

// Valid reports whether the candidate carries the required fields
func (in UserInput) Valid() bool {
	return strings.TrimSpace(in.Name) != "" && strings.TrimSpace(in.Email) != ""
}

// AppInput is a candidate application submitted by the admin pages
type AppInput struct {
	Name        string
	URL         string
	Description string
	CreatedBy   int64
}

// Valid reports whether the candidate carries the required fields
func (in AppInput) Valid() bool {
	return strings.TrimSpace(in.Name) != ""
}
