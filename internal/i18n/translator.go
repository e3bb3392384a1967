package i18n

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/preachit/logistics-site/internal/config"
	"github.com/preachit/logistics-site/internal/model"
)

// Translator resolves message keys in the current language and keeps the
// language preference in the store.
type Translator struct {
	catalog *Catalog
	store   config.Store
	logger  *zap.Logger

	mu      sync.RWMutex
	current model.LanguageCode
}

// NewTranslator creates a translator whose initial language is read from
// store. An absent or unsupported stored value falls back to English.
func NewTranslator(catalog *Catalog, store config.Store, logger *zap.Logger) *Translator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tr := &Translator{
		catalog: catalog,
		store:   store,
		logger:  logger,
		current: model.DefaultLanguage,
	}

	if stored, ok := store.Load(config.KeyLanguage); ok {
		code, valid := model.ParseLanguageCode(stored)
		if valid && catalog.HasLanguage(code) {
			tr.current = code
		} else {
			logger.Info("Ignoring stored language", zap.String("value", stored))
		}
	}

	return tr
}

// T returns the message for key in the current language, or key itself when
// the current language has no message for it.
func (tr *Translator) T(key string) string {
	tr.mu.RLock()
	lang := tr.current
	tr.mu.RUnlock()

	if msg, ok := tr.catalog.Lookup(lang, key); ok {
		return msg
	}
	return key
}

// Tf is T followed by fmt.Sprintf when args are given
func (tr *Translator) Tf(key string, args ...any) string {
	msg := tr.T(key)
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Language returns the current language code
func (tr *Translator) Language() model.LanguageCode {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.current
}

// SetLanguage persists code and makes it current. Unsupported codes leave the
// state untouched and report false.
func (tr *Translator) SetLanguage(code string) bool {
	lang, ok := model.ParseLanguageCode(code)
	if !ok || !tr.catalog.HasLanguage(lang) {
		tr.logger.Warn("Rejected unsupported language", zap.String("code", code))
		return false
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	tr.store.Save(config.KeyLanguage, string(lang))
	tr.current = lang
	tr.logger.Debug("Language changed", zap.String("language", string(lang)))
	return true
}
