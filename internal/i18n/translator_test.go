package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/preachit/logistics-site/internal/config"
	"github.com/preachit/logistics-site/internal/model"
)

func TestNewTranslator_FreshStoreDefaultsToEnglish(t *testing.T) {
	tr := NewTranslator(nil, config.NewMemoryStore(), nil)

	assert.Equal(t, model.LanguageEnglish, tr.Language())
	assert.Equal(t, "Home", tr.T("home"))
}

func TestNewTranslator_ReadsStoredLanguage(t *testing.T) {
	store := config.NewMemoryStore()
	store.Save(config.KeyLanguage, "fr")

	tr := NewTranslator(nil, store, nil)

	assert.Equal(t, model.LanguageFrench, tr.Language())
	assert.Equal(t, "Accueil", tr.T("home"))
}

func TestNewTranslator_InvalidStoredLanguage(t *testing.T) {
	store := config.NewMemoryStore()
	store.Save(config.KeyLanguage, "klingon")

	tr := NewTranslator(nil, store, nil)

	assert.Equal(t, model.LanguageEnglish, tr.Language())
}

func TestTranslator_EveryLanguageResolvesEnglishKeys(t *testing.T) {
	catalog := DefaultCatalog()
	tr := NewTranslator(catalog, config.NewMemoryStore(), nil)

	for _, code := range model.LanguageCodes() {
		require.True(t, tr.SetLanguage(string(code)))
		for _, key := range catalog.Keys(model.LanguageEnglish) {
			assert.NotEmpty(t, tr.T(key), "empty message for %s/%s", code, key)
		}
	}
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	catalog, err := LoadCatalog(validFS())
	require.NoError(t, err)
	tr := NewTranslator(catalog, config.NewMemoryStore(), nil)

	assert.Equal(t, "About", tr.T("about"))
	assert.Equal(t, "nonexistent", tr.T("nonexistent"))

	// No English fallback: a key absent in zh resolves to the key
	require.True(t, tr.SetLanguage("zh"))
	assert.Equal(t, "about", tr.T("about"))
	assert.Equal(t, "首页", tr.T("home"))
}

func TestTranslator_SetLanguageIsIdempotent(t *testing.T) {
	store := config.NewMemoryStore()
	tr := NewTranslator(nil, store, nil)

	require.True(t, tr.SetLanguage("ja"))
	first := tr.T("contactTitle")
	require.True(t, tr.SetLanguage("ja"))

	assert.Equal(t, model.LanguageJapanese, tr.Language())
	assert.Equal(t, first, tr.T("contactTitle"))
	stored, _ := store.Load(config.KeyLanguage)
	assert.Equal(t, "ja", stored)
}

func TestTranslator_RoundTripAcrossRestart(t *testing.T) {
	store := config.NewMemoryStore()
	NewTranslator(nil, store, nil).SetLanguage("zh")

	restarted := NewTranslator(nil, store, nil)
	assert.Equal(t, model.LanguageChinese, restarted.Language())
}

func TestTranslator_RejectsUnsupportedCode(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := config.NewMemoryStore()
	tr := NewTranslator(nil, store, zap.New(core))
	require.True(t, tr.SetLanguage("fr"))

	assert.False(t, tr.SetLanguage("xx"))
	assert.False(t, tr.SetLanguage(""))

	assert.Equal(t, model.LanguageFrench, tr.Language())
	stored, _ := store.Load(config.KeyLanguage)
	assert.Equal(t, "fr", stored)
	assert.Equal(t, 2, logs.FilterMessage("Rejected unsupported language").Len())
}

func TestTranslator_Tf(t *testing.T) {
	tr := NewTranslator(nil, config.NewMemoryStore(), nil)

	assert.Equal(t, "© 2026 Preach It Enterprise. All rights reserved.", tr.Tf("copyright", 2026, tr.T("allRightsReserved")))
	assert.Equal(t, "Home", tr.Tf("home"))
	assert.Equal(t, "missing", tr.Tf("missing"))
}
