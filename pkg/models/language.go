package models

import "strings"

// Supported language codes, stored lowercase.
const (
	LanguageTR = "tr"
	LanguageEN = "en"
	LanguageAZ = "az"
	LanguageCN = "cn"
	LanguageFR = "fr"
	LanguageGR = "gr"
	LanguageIT = "it"
	LanguageKZ = "kz"
	LanguageRU = "ru"
	LanguageSP = "sp"
	LanguageTK = "tk"
)

// Language is a supported target language with a display name
type Language struct {
	Code string
	Name string
}

// Languages returns the supported languages in their fixed column order
func Languages() []Language {
	return []Language{
		{Code: LanguageTR, Name: "Turkish"},
		{Code: LanguageEN, Name: "English"},
		{Code: LanguageAZ, Name: "Azerbaijani"},
		{Code: LanguageCN, Name: "Chinese"},
		{Code: LanguageFR, Name: "French"},
		{Code: LanguageGR, Name: "Greek"},
		{Code: LanguageIT, Name: "Italian"},
		{Code: LanguageKZ, Name: "Kazakh"},
		{Code: LanguageRU, Name: "Russian"},
		{Code: LanguageSP, Name: "Spanish"},
		{Code: LanguageTK, Name: "Turkmen"},
	}
}

// IsSupportedLanguage reports whether code matches a supported language,
// ignoring case
func IsSupportedLanguage(code string) bool {
	lowered := strings.ToLower(code)
	for _, lang := range Languages() {
		if lang.Code == lowered {
			return true
		}
	}
	return false
}
