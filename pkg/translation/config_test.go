package translation

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// mutateDefault decodes the embedded config, applies fn and re-encodes it.
func mutateDefault(t *testing.T, fn func(raw map[string]any)) []byte {
	t.Helper()
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(defaultConfig, &raw))
	fn(raw)
	out, err := yaml.Marshal(raw)
	require.NoError(t, err)
	return out
}

func sectionFields(raw map[string]any, section, lang string) map[string]any {
	return raw["sections"].(map[string]any)[section].(map[string]any)[lang].(map[string]any)
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	require.Len(t, cfg.Languages, 3)
	assert.Equal(t, domain.Language{Code: "en", Name: "English", Offset: 0}, cfg.Languages[0])
	assert.Equal(t, domain.Language{Code: "hi", Name: "Hindi", Offset: 800}, cfg.Languages[1])
	assert.Equal(t, domain.Language{Code: "or", Name: "Odia", Offset: 1600}, cfg.Languages[2])

	assert.Equal(t, "Collectorate Jharsugda Odisha - Complete Tri-lingual", cfg.Flow.Name)
	assert.Equal(t, 1, cfg.Flow.Version)
	assert.True(t, cfg.Flow.Active)
	assert.Equal(t, "hi", cfg.Flow.Trigger)
	assert.Equal(t, "keyword", cfg.Flow.TriggerType)

	require.Len(t, cfg.Departments.Rows, 2)
	assert.Equal(t, "dept_health", cfg.Departments.Rows[0].ID)

	success, err := cfg.Sections.Lookup(SectionGrievance, "or", FieldSuccess)
	require.NoError(t, err)
	assert.Contains(t, success, "{{grievanceId}}")

	l, ok := cfg.Language("hi")
	assert.True(t, ok)
	assert.Equal(t, "Hindi", l.Name)
	_, ok = cfg.Language("fr")
	assert.False(t, ok)
}

func TestParse_MissingField(t *testing.T) {
	data := mutateDefault(t, func(raw map[string]any) {
		delete(sectionFields(raw, SectionGrievance, "hi"), FieldSuccess)
	})

	_, err := Parse(data)
	require.Error(t, err)

	var cerr *domain.ConstructionError
	require.True(t, errors.As(err, &cerr), "got %T: %v", err, err)
	assert.Equal(t, SectionGrievance, cerr.Section)
	assert.Equal(t, "hi", cerr.Language)
	assert.Equal(t, FieldSuccess, cerr.Field)
	assert.ErrorIs(t, err, domain.ErrConstruction)
	assert.Contains(t, err.Error(), "success")
	assert.Contains(t, err.Error(), "hi")
}

func TestParse_BlankField(t *testing.T) {
	data := mutateDefault(t, func(raw map[string]any) {
		sectionFields(raw, SectionMainMenu, "or")[FieldMenuButton] = "   "
	})

	_, err := Parse(data)
	var cerr *domain.ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "or", cerr.Language)
	assert.Equal(t, FieldMenuButton, cerr.Field)
	assert.Equal(t, "blank", cerr.Reason)
}

func TestParse_MissingPlaceholder(t *testing.T) {
	data := mutateDefault(t, func(raw map[string]any) {
		sectionFields(raw, SectionGrievance, "en")[FieldSuccess] = "Registered!"
	})

	_, err := Parse(data)
	var cerr *domain.ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, FieldSuccess, cerr.Field)
	assert.Contains(t, cerr.Reason, "{{grievanceId}}")
}

func TestParse_MissingLanguageInSection(t *testing.T) {
	data := mutateDefault(t, func(raw map[string]any) {
		delete(raw["sections"].(map[string]any)[SectionMainMenu].(map[string]any), "or")
	})

	_, err := Parse(data)
	var cerr *domain.ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, SectionMainMenu, cerr.Section)
	assert.Equal(t, "or", cerr.Language)
}

func TestParse_Departments(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d map[string]any)
	}{
		{"block missing", nil},
		{"no title", func(d map[string]any) { delete(d, "title") }},
		{"no rows", func(d map[string]any) { delete(d, "rows") }},
		{"empty rows", func(d map[string]any) { d["rows"] = []any{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mutateDefault(t, func(raw map[string]any) {
				if tt.mutate == nil {
					delete(raw, "departments")
					return
				}
				tt.mutate(raw["departments"].(map[string]any))
			})

			_, err := Parse(data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDepartments_Validate(t *testing.T) {
	tests := []struct {
		name  string
		deps  Departments
		field string
	}{
		{"blank title", Departments{Title: " ", Rows: []domain.Row{{ID: "d", Title: "D"}}}, "departments.title"},
		{"no rows", Departments{Title: "Departments"}, "departments.rows"},
		{"row without id", Departments{Title: "Departments", Rows: []domain.Row{{Title: "D"}}}, "departments.rows[0].id"},
		{"row without title", Departments{Title: "Departments", Rows: []domain.Row{{ID: "d"}}}, "departments.rows[0].title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cerr *domain.ConstructionError
			require.ErrorAs(t, tt.deps.Validate(), &cerr)
			assert.Equal(t, tt.field, cerr.Field)
		})
	}

	cfg, err := Default()
	require.NoError(t, err)
	assert.NoError(t, cfg.Departments.Validate())
}

func TestParse_InvalidShape(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a mapping", "- a\n- b\n"},
		{"empty", ""},
		{"unknown top-level key", "flow: {name: x, version: 1}\nlanguages: []\nsections: {}\nextra: 1\n"},
		{"version not integer", "flow: {name: x, version: one}\nlanguages: []\nsections: {}\n"},
		{"section value not string", "flow: {name: x, version: 1}\nlanguages: []\nsections: {main_menu: {en: {header: [1, 2]}}}\n"},
		{"bad trigger type", "flow: {name: x, version: 1, trigger_type: shout}\nlanguages: []\nsections: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidateLanguages(t *testing.T) {
	tests := []struct {
		name   string
		langs  []domain.Language
		reason string
	}{
		{"empty list", nil, "no languages configured"},
		{"empty code", []domain.Language{{Code: "", Name: "X"}}, "empty language code"},
		{"bad tag", []domain.Language{{Code: "not a tag!", Name: "X"}}, "not a BCP 47 language tag"},
		{"duplicate", []domain.Language{{Code: "en", Name: "English"}, {Code: "en", Name: "Again", Offset: 800}}, "duplicate language code"},
		{"empty name", []domain.Language{{Code: "en"}}, "empty display name"},
		{"negative offset", []domain.Language{{Code: "en", Name: "English", Offset: -1}}, "negative layout offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLanguages(tt.langs)
			var cerr *domain.ConstructionError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.reason, cerr.Reason)
		})
	}

	assert.NoError(t, ValidateLanguages([]domain.Language{{Code: "en", Name: "English"}, {Code: "or", Name: "Odia", Offset: 800}}))
}

func TestLoadFile(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var raw map[string]any
		require.NoError(t, yaml.Unmarshal(defaultConfig, &raw))
		data, err := json.Marshal(raw)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "translations.json")
		require.NoError(t, os.WriteFile(path, data, 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, cfg.Languages, 3)
	})

	t.Run("subset of languages", func(t *testing.T) {
		data := mutateDefault(t, func(raw map[string]any) {
			raw["languages"] = raw["languages"].([]any)[:1]
		})
		path := filepath.Join(t.TempDir(), "en.yaml")
		require.NoError(t, os.WriteFile(path, data, 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, cfg.Languages, 1)
		assert.Equal(t, "en", cfg.Languages[0].Code)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestFields_FirstErrorWins(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	f := cfg.Sections.Scope(SectionGrievance, "hi")
	assert.NotEmpty(t, f.Get(FieldNamePrompt))
	assert.Empty(t, f.Get("no_such_field"))
	assert.Empty(t, f.Get(FieldSuccess), "reads after a failure return empty")

	var cerr *domain.ConstructionError
	require.ErrorAs(t, f.Err(), &cerr)
	assert.Equal(t, "no_such_field", cerr.Field)

	_, err = cfg.Sections.Lookup("nope", "en", FieldSuccess)
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "section missing", cerr.Reason)
}
