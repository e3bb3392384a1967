package model

// LanguageCode identifies one of the supported site languages
type LanguageCode string

const (
	// LanguageEnglish is the canonical catalog language and the default
	LanguageEnglish LanguageCode = "en"

	// LanguageChinese is simplified Chinese
	LanguageChinese LanguageCode = "zh"

	// LanguageFrench is French
	LanguageFrench LanguageCode = "fr"

	// LanguageJapanese is Japanese
	LanguageJapanese LanguageCode = "ja"
)

// DefaultLanguage is used when no valid language preference is stored
const DefaultLanguage = LanguageEnglish

// Language describes a selectable language for the header menu
type Language struct {
	Code LanguageCode
	Name string
	Flag string
}

var languages = []Language{
	{Code: LanguageEnglish, Name: "English", Flag: "🇺🇸"},
	{Code: LanguageChinese, Name: "中文", Flag: "🇨🇳"},
	{Code: LanguageFrench, Name: "Français", Flag: "🇫🇷"},
	{Code: LanguageJapanese, Name: "日本語", Flag: "🇯🇵"},
}

// String returns the string representation of LanguageCode
func (c LanguageCode) String() string {
	return string(c)
}

// IsValid reports whether c is one of the supported codes
func (c LanguageCode) IsValid() bool {
	_, ok := ParseLanguageCode(string(c))
	return ok
}

// ParseLanguageCode returns the LanguageCode for s. Matching is exact.
func ParseLanguageCode(s string) (LanguageCode, bool) {
	for _, l := range languages {
		if string(l.Code) == s {
			return l.Code, true
		}
	}
	return "", false
}

// Languages returns the supported languages in menu order
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LanguageCodes returns the supported codes in menu order
func LanguageCodes() []LanguageCode {
	out := make([]LanguageCode, 0, len(languages))
	for _, l := range languages {
		out = append(out, l.Code)
	}
	return out
}

// LanguageByCode returns display metadata for code
func LanguageByCode(code LanguageCode) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}
