package validator

import (
	"unicode/utf8"

	"github.com/aretw0/grievanceflow/pkg/domain"
)

// WhatsApp Cloud API limits for interactive messages.
const (
	MaxMessageLength        = 4096
	MaxButtonsPerMessage    = 3
	MaxButtonTextLength     = 20
	MaxListButtonTextLength = 20
	MaxSectionsPerList      = 10
	MaxRowsPerSection       = 10
	MaxSectionTitleLength   = 24
	MaxRowTitleLength       = 24
	MaxRowDescriptionLength = 72
)

// checkLimits warns about content WhatsApp would truncate or reject.
// Lengths are counted in runes.
func checkLimits(doc *domain.Document, r *Report) {
	for _, n := range doc.Nodes {
		d := n.Data
		if l := utf8.RuneCountInString(d.MessageText); l > MaxMessageLength {
			r.warnf(n.ID, "", "message text is %d characters, limit is %d", l, MaxMessageLength)
		}

		if len(d.Buttons) > MaxButtonsPerMessage {
			r.warnf(n.ID, "", "%d buttons, limit is %d", len(d.Buttons), MaxButtonsPerMessage)
		}
		for _, b := range d.Buttons {
			if l := utf8.RuneCountInString(b.Text); l > MaxButtonTextLength {
				r.warnf(n.ID, "", "button %q text is %d characters, limit is %d", b.ID, l, MaxButtonTextLength)
			}
		}

		if l := utf8.RuneCountInString(d.ButtonText); l > MaxListButtonTextLength {
			r.warnf(n.ID, "", "list button text is %d characters, limit is %d", l, MaxListButtonTextLength)
		}
		if len(d.Sections) > MaxSectionsPerList {
			r.warnf(n.ID, "", "%d sections, limit is %d", len(d.Sections), MaxSectionsPerList)
		}
		for _, s := range d.Sections {
			if l := utf8.RuneCountInString(s.Title); l > MaxSectionTitleLength {
				r.warnf(n.ID, "", "section %q title is %d characters, limit is %d", s.Title, l, MaxSectionTitleLength)
			}
			if len(s.Rows) > MaxRowsPerSection {
				r.warnf(n.ID, "", "section %q has %d rows, limit is %d", s.Title, len(s.Rows), MaxRowsPerSection)
			}
			for _, row := range s.Rows {
				if l := utf8.RuneCountInString(row.Title); l > MaxRowTitleLength {
					r.warnf(n.ID, "", "row %q title is %d characters, limit is %d", row.ID, l, MaxRowTitleLength)
				}
				if l := utf8.RuneCountInString(row.Description); l > MaxRowDescriptionLength {
					r.warnf(n.ID, "", "row %q description is %d characters, limit is %d", row.ID, l, MaxRowDescriptionLength)
				}
			}
		}
	}
}
