package domain

// NodeType is the wire tag interpreted by the flow runtime.
type NodeType string

// NodeType constants. The set is closed: the validator rejects anything else.
const (
	// NodeTypeStart is the single entry anchor of a flow.
	NodeTypeStart NodeType = "start"
	// NodeTypeEnd is the terminal anchor; reaching it clears the session.
	NodeTypeEnd NodeType = "end"
	// NodeTypeButtonMessage sends a message with quick-reply buttons (hard step).
	NodeTypeButtonMessage NodeType = "buttonMessage"
	// NodeTypeListMessage sends an interactive list (hard step).
	NodeTypeListMessage NodeType = "listMessage"
	// NodeTypeUserInput asks for free input and saves it to a context field.
	NodeTypeUserInput NodeType = "userInput"
	// NodeTypeTextMessage sends text and continues immediately (soft step).
	NodeTypeTextMessage NodeType = "textMessage"
)

// NodeTypes lists every supported type tag.
var NodeTypes = []NodeType{
	NodeTypeStart,
	NodeTypeEnd,
	NodeTypeButtonMessage,
	NodeTypeListMessage,
	NodeTypeUserInput,
	NodeTypeTextMessage,
}

// Valid reports whether t is one of the supported type tags.
func (t NodeType) Valid() bool {
	for _, known := range NodeTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Node represents one step in the conversation graph.
type Node struct {
	ID       string   `json:"id"`
	Type     NodeType `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// Position is the 2-D layout coordinate used by the visual editor.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NodeData is the type-specific payload of a node.
// Only the fields relevant to the node type are populated; the rest are omitted on the wire.
type NodeData struct {
	Label       string `json:"label"`
	MessageText string `json:"messageText,omitempty"`

	// Start configuration
	Trigger     string `json:"trigger,omitempty"`
	TriggerType string `json:"triggerType,omitempty"`

	// Button message
	Buttons []Button `json:"buttons,omitempty"`

	// List message
	ButtonText    string    `json:"buttonText,omitempty"`
	IsDynamic     bool      `json:"isDynamic,omitempty"`
	DynamicSource string    `json:"dynamicSource,omitempty"`
	Sections      []Section `json:"sections,omitempty"`

	// User input
	InputType   string      `json:"inputType,omitempty"`
	SaveToField string      `json:"saveToField,omitempty"`
	Validation  *Validation `json:"validation,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`

	// Text message placeholders resolved by the runtime, e.g. "location.address".
	Variables []string `json:"variables,omitempty"`

	// End configuration
	EndMessage   string `json:"endMessage,omitempty"`
	ClearSession bool   `json:"clearSession,omitempty"`
}

// ButtonQuickReply is the only button kind the generated flows use.
const ButtonQuickReply = "quick_reply"

// Button is a quick-reply choice. Its ID is the source handle of the matching edge.
type Button struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// Section groups list rows under a title.
type Section struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// Row is a list choice. Its ID is the source handle of the matching edge.
type Row struct {
	ID          string `json:"id" mapstructure:"id"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

// Validation constrains user input. MinLength/MaxLength are omitted when unset.
type Validation struct {
	Required  bool `json:"required"`
	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`
}

// Choices returns the ids a user can pick on this node (buttons and list rows).
func (n Node) Choices() []string {
	var ids []string
	for _, b := range n.Data.Buttons {
		ids = append(ids, b.ID)
	}
	for _, s := range n.Data.Sections {
		for _, r := range s.Rows {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
