package translation

import (
	"strings"

	"github.com/aretw0/grievanceflow/pkg/domain"
)

// Section names of the translation table.
const (
	SectionLanguageSelection = "language_selection"
	SectionMainMenu          = "main_menu"
	SectionGrievance         = "grievance_flow"
)

// Field names of the language_selection section.
const (
	FieldLanguageButton = "button"
	FieldLanguagePrompt = "prompt"
)

// Field names of the main_menu section.
const (
	FieldMenuHeader       = "header"
	FieldMenuButton       = "button"
	FieldMenuSectionTitle = "section_title"
	FieldGrievanceTitle   = "grievance_title"
	FieldGrievanceDesc    = "grievance_desc"
	FieldTrackTitle       = "track_title"
	FieldTrackDesc        = "track_desc"
	FieldHelpTitle        = "help_title"
	FieldHelpDesc         = "help_desc"
)

// Field names of the grievance_flow section.
const (
	FieldNamePrompt     = "name_prompt"
	FieldDeptPrompt     = "dept_prompt"
	FieldDeptButton     = "dept_button"
	FieldDescPrompt     = "desc_prompt"
	FieldLocationPrompt = "location_prompt"
	FieldSkipLabel      = "skip_label"
	FieldAddressLabel   = "address_label"
	FieldAddressPrompt  = "address_prompt"
	FieldMediaPrompt    = "media_prompt"
	FieldUploadLabel    = "upload_label"
	FieldConfirmation   = "confirmation"
	FieldSubmitPrompt   = "submit_prompt"
	FieldSubmitLabel    = "submit_label"
	FieldCancelLabel    = "cancel_label"
	FieldSuccess        = "success"
)

// Requirements declares, per section, the fields every language must define.
var Requirements = map[string][]string{
	SectionLanguageSelection: {
		FieldLanguageButton,
		FieldLanguagePrompt,
	},
	SectionMainMenu: {
		FieldMenuHeader,
		FieldMenuButton,
		FieldMenuSectionTitle,
		FieldGrievanceTitle,
		FieldGrievanceDesc,
		FieldTrackTitle,
		FieldTrackDesc,
		FieldHelpTitle,
		FieldHelpDesc,
	},
	SectionGrievance: {
		FieldNamePrompt,
		FieldDeptPrompt,
		FieldDeptButton,
		FieldDescPrompt,
		FieldLocationPrompt,
		FieldSkipLabel,
		FieldAddressLabel,
		FieldAddressPrompt,
		FieldMediaPrompt,
		FieldUploadLabel,
		FieldConfirmation,
		FieldSubmitPrompt,
		FieldSubmitLabel,
		FieldCancelLabel,
		FieldSuccess,
	},
}

// RequiredPlaceholders lists the tokens a template must reference, by section and field.
// The runtime fills them in; a translation that drops one would show an incomplete summary.
var RequiredPlaceholders = map[string]map[string][]string{
	SectionGrievance: {
		FieldConfirmation: {"citizenName", "departmentName", "description", "location.address", "media.length"},
		FieldSuccess:      {"grievanceId"},
	},
}

// sectionOrder fixes the iteration order of Requirements so errors are deterministic.
var sectionOrder = []string{SectionLanguageSelection, SectionMainMenu, SectionGrievance}

// Table maps section -> language code -> field -> localized string.
type Table map[string]map[string]map[string]string

// Lookup returns the localized string or a *domain.ConstructionError naming what is missing.
// Blank strings count as missing.
func (t Table) Lookup(section, lang, field string) (string, error) {
	langs, ok := t[section]
	if !ok {
		return "", &domain.ConstructionError{Section: section, Reason: "section missing"}
	}
	fields, ok := langs[lang]
	if !ok {
		return "", &domain.ConstructionError{Section: section, Language: lang, Reason: "language missing"}
	}
	value, ok := fields[field]
	if !ok {
		return "", domain.MissingField(section, lang, field)
	}
	if strings.TrimSpace(value) == "" {
		return "", &domain.ConstructionError{Section: section, Language: lang, Field: field, Reason: "blank"}
	}
	return value, nil
}

// Fields is a lookup scoped to one section and language.
// It records the first failure so a builder can read many fields and check once.
type Fields struct {
	table   Table
	section string
	lang    string
	err     error
}

// Scope returns a Fields reader for one section and language.
func (t Table) Scope(section, lang string) *Fields {
	return &Fields{table: t, section: section, lang: lang}
}

// Get returns the field value, or "" after recording the first lookup failure.
func (f *Fields) Get(field string) string {
	if f.err != nil {
		return ""
	}
	v, err := f.table.Lookup(f.section, f.lang, field)
	if err != nil {
		f.err = err
		return ""
	}
	return v
}

// Err returns the first lookup failure, if any.
func (f *Fields) Err() error {
	return f.err
}

// Require checks every declared field and placeholder for every language.
func (t Table) Require(langs []domain.Language) error {
	for _, section := range sectionOrder {
		for _, lang := range langs {
			for _, field := range Requirements[section] {
				value, err := t.Lookup(section, lang.Code, field)
				if err != nil {
					return err
				}
				if err := requirePlaceholders(section, lang.Code, field, value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func requirePlaceholders(section, lang, field, value string) error {
	want := RequiredPlaceholders[section][field]
	if len(want) == 0 {
		return nil
	}
	have := make(map[string]bool)
	for _, p := range domain.Placeholders(value) {
		have[p] = true
	}
	for _, p := range want {
		if !have[p] {
			return &domain.ConstructionError{
				Section:  section,
				Language: lang,
				Field:    field,
				Reason:   "missing placeholder {{" + p + "}}",
			}
		}
	}
	return nil
}
