package model

import "testing"

func TestParseLanguageCode(t *testing.T) {
	tests := []struct {
		input    string
		expected LanguageCode
		ok       bool
	}{
		{"en", LanguageEnglish, true},
		{"zh", LanguageChinese, true},
		{"fr", LanguageFrench, true},
		{"ja", LanguageJapanese, true},
		{"xx", "", false},
		{"EN", "", false},
		{"en-US", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		code, ok := ParseLanguageCode(test.input)
		if code != test.expected || ok != test.ok {
			t.Errorf("ParseLanguageCode(%q) = (%q, %v), expected (%q, %v)", test.input, code, ok, test.expected, test.ok)
		}
	}
}

func TestLanguages_MenuOrder(t *testing.T) {
	expected := []LanguageCode{LanguageEnglish, LanguageChinese, LanguageFrench, LanguageJapanese}
	codes := LanguageCodes()

	if len(codes) != len(expected) {
		t.Fatalf("Expected %d languages, got %d", len(expected), len(codes))
	}
	for i, code := range expected {
		if codes[i] != code {
			t.Errorf("Language %d: expected %s, got %s", i, code, codes[i])
		}
	}

	for _, l := range Languages() {
		if l.Name == "" || l.Flag == "" {
			t.Errorf("Language %s is missing display metadata", l.Code)
		}
	}
}

func TestLanguages_ReturnsCopy(t *testing.T) {
	list := Languages()
	list[0].Name = "changed"

	if l, _ := LanguageByCode(LanguageEnglish); l.Name != "English" {
		t.Errorf("Languages() should return a copy, got name %q", l.Name)
	}
}

func TestLanguageCode_IsValid(t *testing.T) {
	if !DefaultLanguage.IsValid() {
		t.Error("Default language should be valid")
	}
	if LanguageCode("de").IsValid() {
		t.Error("de should not be a supported language")
	}
}
