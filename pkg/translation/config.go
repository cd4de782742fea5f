package translation

import (
	"fmt"
	"strings"

	"github.com/aretw0/grievanceflow/pkg/domain"
	"golang.org/x/text/language"
)

// Config is the complete input of the generator.
type Config struct {
	Flow        FlowInfo          `mapstructure:"flow"`
	Languages   []domain.Language `mapstructure:"languages"`
	Departments Departments       `mapstructure:"departments"`
	Sections    Table             `mapstructure:"sections"`
}

// FlowInfo carries the document metadata and the language-neutral texts.
type FlowInfo struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	CompanyID   string `mapstructure:"company_id"`
	Version     int    `mapstructure:"version"`
	Active      bool   `mapstructure:"active"`
	Trigger     string `mapstructure:"trigger"`
	TriggerType string `mapstructure:"trigger_type"`
	// Welcome heads the language-selection message, above each language's prompt.
	Welcome    string `mapstructure:"welcome"`
	EndMessage string `mapstructure:"end_message"`
}

// Departments is the static fallback list shown until the runtime injects real departments.
type Departments struct {
	Title string       `mapstructure:"title"`
	Rows  []domain.Row `mapstructure:"rows"`
}

// Validate checks the language descriptors and the translation table.
// It returns the first problem as a *domain.ConstructionError.
func (c *Config) Validate() error {
	if err := ValidateLanguages(c.Languages); err != nil {
		return err
	}
	if c.Flow.Name == "" {
		return &domain.ConstructionError{Field: "flow.name", Reason: "missing"}
	}
	if err := c.Departments.Validate(); err != nil {
		return err
	}
	return c.Sections.Require(c.Languages)
}

// Validate requires a titled section with at least one row, each with an id and title.
func (d Departments) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &domain.ConstructionError{Field: "departments.title", Reason: "missing"}
	}
	if len(d.Rows) == 0 {
		return &domain.ConstructionError{Field: "departments.rows", Reason: "no fallback rows"}
	}
	for i, r := range d.Rows {
		field := fmt.Sprintf("departments.rows[%d]", i)
		if strings.TrimSpace(r.ID) == "" {
			return &domain.ConstructionError{Field: field + ".id", Reason: "missing"}
		}
		if strings.TrimSpace(r.Title) == "" {
			return &domain.ConstructionError{Field: field + ".title", Reason: "missing"}
		}
	}
	return nil
}

// Language returns the descriptor with the given code.
func (c *Config) Language(code string) (domain.Language, bool) {
	for _, l := range c.Languages {
		if l.Code == code {
			return l, true
		}
	}
	return domain.Language{}, false
}

// ValidateLanguages rejects an empty list and malformed or duplicate descriptors.
func ValidateLanguages(langs []domain.Language) error {
	if len(langs) == 0 {
		return &domain.ConstructionError{Field: "languages", Reason: "no languages configured"}
	}
	seen := make(map[string]bool, len(langs))
	for i, l := range langs {
		field := fmt.Sprintf("languages[%d]", i)
		if l.Code == "" {
			return &domain.ConstructionError{Field: field + ".code", Reason: "empty language code"}
		}
		if _, err := language.Parse(l.Code); err != nil {
			return &domain.ConstructionError{Language: l.Code, Field: field + ".code", Reason: "not a BCP 47 language tag"}
		}
		if seen[l.Code] {
			return &domain.ConstructionError{Language: l.Code, Field: field + ".code", Reason: "duplicate language code"}
		}
		seen[l.Code] = true
		if l.Name == "" {
			return &domain.ConstructionError{Language: l.Code, Field: field + ".name", Reason: "empty display name"}
		}
		if l.Offset < 0 {
			return &domain.ConstructionError{Language: l.Code, Field: field + ".offset", Reason: "negative layout offset"}
		}
	}
	return nil
}
