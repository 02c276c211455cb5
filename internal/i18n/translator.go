// Package i18n loads the embedded translation catalogs and resolves UI
// strings by dot-separated key paths.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed translations/*.json
var translationsFS embed.FS

// Language pairs a catalog code with its self-reported display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Translator resolves keys against one loaded language catalog.
type Translator struct {
	language string
	catalog  map[string]any
}

// New loads the catalog for a language code, falling back to English when no
// catalog for that code exists.
func New(language string) (*Translator, error) {
	catalog, err := loadCatalog(language)
	if err != nil {
		language = "en"
		if catalog, err = loadCatalog(language); err != nil {
			return nil, err
		}
	}
	return &Translator{language: language, catalog: catalog}, nil
}

func loadCatalog(language string) (map[string]any, error) {
	data, err := translationsFS.ReadFile("translations/" + language + ".json")
	if err != nil {
		return nil, fmt.Errorf("load translations for %q: %w", language, err)
	}
	var catalog map[string]any
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse translations for %q: %w", language, err)
	}
	return catalog, nil
}

// Language returns the code of the loaded catalog.
func (t *Translator) Language() string { return t.language }

// Catalog returns the raw translation tree, for handing to the UI wholesale.
func (t *Translator) Catalog() map[string]any { return t.catalog }

// Get resolves a dot-separated key path such as "settings.keybind.title" and
// substitutes {name} placeholders from params. An unknown key is returned
// verbatim so missing translations show up instead of disappearing.
func (t *Translator) Get(key string, params map[string]string) string {
	value := any(t.catalog)
	for _, part := range strings.Split(key, ".") {
		m, ok := value.(map[string]any)
		if !ok {
			return key
		}
		if value, ok = m[part]; !ok {
			return key
		}
	}
	text, ok := value.(string)
	if !ok {
		return key
	}
	for name, v := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", v)
	}
	return text
}

// Languages lists every embedded catalog with its display name, sorted by
// code.
func Languages() ([]Language, error) {
	entries, err := fs.Glob(translationsFS, "translations/*.json")
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)

	languages := make([]Language, 0, len(entries))
	for _, entry := range entries {
		code := strings.TrimSuffix(strings.TrimPrefix(entry, "translations/"), ".json")
		catalog, err := loadCatalog(code)
		if err != nil {
			return nil, err
		}
		name := code
		if n, ok := catalog["language_name"].(string); ok {
			name = n
		}
		languages = append(languages, Language{Code: code, Name: name})
	}
	return languages, nil
}
