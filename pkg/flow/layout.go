package flow

import "github.com/aretw0/grievanceflow/pkg/domain"

// Horizontal columns of the editor layout.
const (
	colStart         = 100
	colLanguage      = 350
	colMenu          = 650
	colName          = 950
	colDepartment    = 1250
	colDescription   = 1550
	colLocation      = 1850
	colMedia         = 2150
	colConfirmation  = 2450
	colSubmit        = 2750
	colSuccess       = 3050
	colEnd           = 3350
	colAddress       = colMedia
	anchorRow        = 600
	menuRowOffset    = 100
	chainRowOffset   = 50
	addressRowOffset = 150
)

// chainAt positions a node of the grievance chain in the language's band.
func chainAt(lang domain.Language, col int) (int, int) {
	return col, lang.Offset + chainRowOffset
}
