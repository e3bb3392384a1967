package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/preachit/logistics-site/internal/model"
)

// LocalesDir is the directory holding the message files inside a catalog FS
const LocalesDir = "locales"

//go:embed locales/*.toml
var embeddedLocales embed.FS

var defaultCatalog = mustLoadEmbedded()

// Catalog maps each supported language to its messages. It is immutable once
// loaded.
type Catalog struct {
	messages map[model.LanguageCode]map[string]string
}

// DefaultCatalog returns the process-wide embedded catalog
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// LoadEmbedded loads the catalog files embedded in this package
func LoadEmbedded() (*Catalog, error) {
	return LoadCatalog(embeddedLocales)
}

func mustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(fmt.Sprintf("load embedded catalog: %v", err))
	}
	return c
}

// MessageFileName returns the file name holding messages for code
func MessageFileName(code model.LanguageCode) string {
	return "active." + string(code) + ".toml"
}

// LoadCatalog reads locales/active.<code>.toml for every supported language
// from fsys. Every language must have a file and the English file must not be
// empty.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	c := &Catalog{messages: make(map[model.LanguageCode]map[string]string)}

	for _, code := range model.LanguageCodes() {
		p := path.Join(LocalesDir, MessageFileName(code))
		file, err := bundle.LoadMessageFileFS(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", p, err)
		}

		want := language.Make(string(code))
		if file.Tag.String() != want.String() {
			return nil, fmt.Errorf("catalog %s: language tag %s does not match %s", p, file.Tag, want)
		}

		messages := make(map[string]string, len(file.Messages))
		for _, m := range file.Messages {
			if _, dup := messages[m.ID]; dup {
				return nil, fmt.Errorf("catalog %s: duplicate key %q", p, m.ID)
			}
			messages[m.ID] = m.Other
		}
		c.messages[code] = messages
	}

	if len(c.messages[model.LanguageEnglish]) == 0 {
		return nil, fmt.Errorf("catalog: base language %s has no messages", model.LanguageEnglish)
	}

	return c, nil
}

// Lookup returns the message for key in lang. Empty messages count as absent.
func (c *Catalog) Lookup(lang model.LanguageCode, key string) (string, bool) {
	msg, ok := c.messages[lang][key]
	if !ok || msg == "" {
		return "", false
	}
	return msg, true
}

// HasLanguage reports whether lang has a message table
func (c *Catalog) HasLanguage(lang model.LanguageCode) bool {
	_, ok := c.messages[lang]
	return ok
}

// Keys returns the sorted keys defined for lang
func (c *Catalog) Keys(lang model.LanguageCode) []string {
	keys := make([]string, 0, len(c.messages[lang]))
	for k := range c.messages[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Missing returns the sorted English keys that lang does not translate
func (c *Catalog) Missing(lang model.LanguageCode) []string {
	var missing []string
	for _, k := range c.Keys(model.LanguageEnglish) {
		if _, ok := c.Lookup(lang, k); !ok {
			missing = append(missing, k)
		}
	}
	return missing
}
