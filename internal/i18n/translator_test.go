package i18n

import "testing"

func TestGet(t *testing.T) {
	tr, err := New("en")
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	tests := []struct {
		name   string
		key    string
		params map[string]string
		want   string
	}{
		{
			name: "nested key",
			key:  "settings.tab.server",
			want: "Server",
		},
		{
			name:   "parameter substitution",
			key:    "app.status.sending",
			params: map[string]string{"n": "3"},
			want:   "[3] Sending screenshot...",
		},
		{
			name:   "multiple parameters",
			key:    "app.status.result",
			params: map[string]string{"n": "1", "message": "done"},
			want:   "[1] done",
		},
		{
			name: "missing key returned verbatim",
			key:  "settings.tab.nonexistent",
			want: "settings.tab.nonexistent",
		},
		{
			name: "intermediate node is not a string",
			key:  "settings.tab",
			want: "settings.tab",
		},
		{
			name: "path through a leaf",
			key:  "settings.tab.server.deeper",
			want: "settings.tab.server.deeper",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Get(tt.key, tt.params); got != tt.want {
				t.Errorf("Get(%q, %v) = %q, want %q", tt.key, tt.params, got, tt.want)
			}
		})
	}
}

func TestNewFallsBackToEnglish(t *testing.T) {
	tr, err := New("xx")
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if tr.Language() != "en" {
		t.Errorf("Language() = %q, want %q", tr.Language(), "en")
	}
}

func TestLanguages(t *testing.T) {
	languages, err := Languages()
	if err != nil {
		t.Fatalf("Languages() returned error: %v", err)
	}
	if len(languages) < 2 {
		t.Fatalf("expected at least two catalogs, got %d", len(languages))
	}

	byCode := map[string]string{}
	for _, lang := range languages {
		byCode[lang.Code] = lang.Name
	}
	if byCode["en"] != "English" {
		t.Errorf("en name = %q, want English", byCode["en"])
	}
	if byCode["es"] != "Español" {
		t.Errorf("es name = %q, want Español", byCode["es"])
	}
}

func TestCatalogsShareKeys(t *testing.T) {
	en, err := New("en")
	if err != nil {
		t.Fatal(err)
	}
	es, err := New("es")
	if err != nil {
		t.Fatal(err)
	}

	var walk func(t *testing.T, prefix string, node map[string]any)
	walk = func(t *testing.T, prefix string, node map[string]any) {
		for key, value := range node {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			if child, ok := value.(map[string]any); ok {
				walk(t, path, child)
				continue
			}
			if got := es.Get(path, nil); got == path {
				t.Errorf("es catalog is missing %q", path)
			}
		}
	}
	walk(t, "", en.Catalog())
}
