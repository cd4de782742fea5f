package flow

import (
	"fmt"

	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/aretw0/grievanceflow/pkg/dsl"
	"github.com/aretw0/grievanceflow/pkg/translation"
)

// Base names of the per-language nodes. The language suffix is appended with Language.ID.
const (
	NodeMainMenu             = "main_menu"
	NodeCitizenName          = "citizen_name"
	NodeDepartmentSelection  = "department_selection"
	NodeGrievanceDescription = "grievance_description"
	NodeLocationOption       = "location_option"
	NodeAddressInput         = "address_input"
	NodeMediaUpload          = "media_upload"
	NodeConfirmation         = "confirmation"
	NodeSubmitButtons        = "submit_buttons"
	NodeSuccessMessage       = "success_message"
)

// Choice ids. Menu rows carry the language suffix; buttons inside the chain do not,
// since their node ids already do.
const (
	RowGrievance  = "grv"
	RowTrack      = "track"
	RowHelp       = "help"
	BtnSkipLoc    = "skip_location"
	BtnTypeAddr   = "type_address"
	BtnSkipMedia  = "skip_media"
	BtnUploadDoc  = "upload_doc"
	BtnConfirm    = "confirm_submit"
	BtnCancel     = "cancel_submit"
	DynamicSource = "departments"
)

// SubgraphNodes is the number of nodes BuildLanguageSubgraph emits per language.
const SubgraphNodes = 10

// SubgraphEdges is the number of edges BuildLanguageSubgraph emits per language.
const SubgraphEdges = 10

// Input bounds of the free-text captures.
const (
	nameMinLength        = 2
	nameMaxLength        = 100
	descriptionMinLength = 10
	descriptionMaxLength = 1000
)

// BuildLanguageSubgraph emits the main menu and the grievance chain of one language.
// Edges that enter the subgraph (language selection) or leave it (end node) are the
// assembler's concern.
func BuildLanguageSubgraph(cfg *translation.Config, lang domain.Language) ([]domain.Node, []domain.Edge, error) {
	menu := cfg.Sections.Scope(translation.SectionMainMenu, lang.Code)
	grv := cfg.Sections.Scope(translation.SectionGrievance, lang.Code)

	id := lang.ID
	label := func(title string) string {
		return fmt.Sprintf("%s (%s)", title, lang.Name)
	}

	b := dsl.New()

	b.Add(id(NodeMainMenu), domain.NodeTypeListMessage).
		At(colMenu, lang.Offset+menuRowOffset).
		Label(label("Main Menu")).
		Message(menu.Get(translation.FieldMenuHeader)).
		List(menu.Get(translation.FieldMenuButton), menu.Get(translation.FieldMenuSectionTitle),
			domain.Row{ID: id(RowGrievance), Title: menu.Get(translation.FieldGrievanceTitle), Description: menu.Get(translation.FieldGrievanceDesc)},
			domain.Row{ID: id(RowTrack), Title: menu.Get(translation.FieldTrackTitle), Description: menu.Get(translation.FieldTrackDesc)},
			domain.Row{ID: id(RowHelp), Title: menu.Get(translation.FieldHelpTitle), Description: menu.Get(translation.FieldHelpDesc)},
		).
		On(id(RowGrievance), id(NodeCitizenName), "File Grievance")

	b.Add(id(NodeCitizenName), domain.NodeTypeUserInput).
		At(chainAt(lang, colName)).
		Label(label("Citizen Name")).
		Message(grv.Get(translation.FieldNamePrompt)).
		Input("text", "citizenName", dsl.Required(nameMinLength, nameMaxLength)).
		Placeholder("Enter your full name").
		Go(id(NodeDepartmentSelection))

	b.Add(id(NodeDepartmentSelection), domain.NodeTypeListMessage).
		At(chainAt(lang, colDepartment)).
		Label(label("Department Selection")).
		Message(grv.Get(translation.FieldDeptPrompt)).
		List(grv.Get(translation.FieldDeptButton), cfg.Departments.Title, cfg.Departments.Rows...).
		Dynamic(DynamicSource).
		Go(id(NodeGrievanceDescription))

	b.Add(id(NodeGrievanceDescription), domain.NodeTypeUserInput).
		At(chainAt(lang, colDescription)).
		Label(label("Grievance Description")).
		Message(grv.Get(translation.FieldDescPrompt)).
		Input("text", "description", dsl.Required(descriptionMinLength, descriptionMaxLength)).
		Placeholder("Describe your grievance").
		Go(id(NodeLocationOption))

	b.Add(id(NodeLocationOption), domain.NodeTypeButtonMessage).
		At(chainAt(lang, colLocation)).
		Label(label("Location Option")).
		Message(grv.Get(translation.FieldLocationPrompt)).
		Button(BtnSkipLoc, grv.Get(translation.FieldSkipLabel)).
		Button(BtnTypeAddr, grv.Get(translation.FieldAddressLabel)).
		On(BtnSkipLoc, id(NodeMediaUpload), "Skip").
		On(BtnTypeAddr, id(NodeAddressInput), "Type Address")

	b.Add(id(NodeAddressInput), domain.NodeTypeUserInput).
		At(colAddress, lang.Offset+addressRowOffset).
		Label(label("Address Input")).
		Message(grv.Get(translation.FieldAddressPrompt)).
		Input("text", "location.address", dsl.Optional()).
		Placeholder("Enter address").
		Go(id(NodeMediaUpload))

	// upload_doc has no target: attachments arrive as media messages handled by the runtime.
	b.Add(id(NodeMediaUpload), domain.NodeTypeButtonMessage).
		At(chainAt(lang, colMedia)).
		Label(label("Media Upload")).
		Message(grv.Get(translation.FieldMediaPrompt)).
		Button(BtnSkipMedia, grv.Get(translation.FieldSkipLabel)).
		Button(BtnUploadDoc, grv.Get(translation.FieldUploadLabel)).
		On(BtnSkipMedia, id(NodeConfirmation), "Skip")

	confirmation := grv.Get(translation.FieldConfirmation)
	b.Add(id(NodeConfirmation), domain.NodeTypeTextMessage).
		At(chainAt(lang, colConfirmation)).
		Label(label("Confirmation")).
		Message(confirmation).
		Variables(domain.Placeholders(confirmation)...).
		Go(id(NodeSubmitButtons))

	// cancel_submit is left without an edge. See DESIGN.md.
	b.Add(id(NodeSubmitButtons), domain.NodeTypeButtonMessage).
		At(chainAt(lang, colSubmit)).
		Label(label("Submit Buttons")).
		Message(grv.Get(translation.FieldSubmitPrompt)).
		Button(BtnConfirm, grv.Get(translation.FieldSubmitLabel)).
		Button(BtnCancel, grv.Get(translation.FieldCancelLabel)).
		On(BtnConfirm, id(NodeSuccessMessage), "Submit")

	success := grv.Get(translation.FieldSuccess)
	b.Add(id(NodeSuccessMessage), domain.NodeTypeTextMessage).
		At(chainAt(lang, colSuccess)).
		Label(label("Success Message")).
		Message(success).
		Variables(domain.Placeholders(success)...)

	if err := menu.Err(); err != nil {
		return nil, nil, err
	}
	if err := grv.Err(); err != nil {
		return nil, nil, err
	}
	return b.Build()
}
