package dsl

import "github.com/aretw0/grievanceflow/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node    domain.Node
	builder *Builder
}

// At sets the layout position.
func (n *NodeBuilder) At(x, y int) *NodeBuilder {
	n.node.Position = domain.Position{X: x, Y: y}
	return n
}

// Label sets the editor label.
func (n *NodeBuilder) Label(label string) *NodeBuilder {
	n.node.Data.Label = label
	return n
}

// Message sets the text sent to the citizen.
func (n *NodeBuilder) Message(text string) *NodeBuilder {
	n.node.Data.MessageText = text
	return n
}

// Button appends a quick-reply button.
func (n *NodeBuilder) Button(id, text string) *NodeBuilder {
	n.node.Data.Buttons = append(n.node.Data.Buttons, domain.Button{
		ID:   id,
		Text: text,
		Type: domain.ButtonQuickReply,
	})
	return n
}

// List configures the list caption and appends one section.
func (n *NodeBuilder) List(buttonText, sectionTitle string, rows ...domain.Row) *NodeBuilder {
	n.node.Data.ButtonText = buttonText
	n.node.Data.Sections = append(n.node.Data.Sections, domain.Section{
		Title: sectionTitle,
		Rows:  append([]domain.Row{}, rows...),
	})
	return n
}

// Dynamic marks a list whose rows the runtime replaces from source.
func (n *NodeBuilder) Dynamic(source string) *NodeBuilder {
	n.node.Data.IsDynamic = true
	n.node.Data.DynamicSource = source
	return n
}

// Input configures a user-input capture saved to field.
func (n *NodeBuilder) Input(inputType, field string, v domain.Validation) *NodeBuilder {
	n.node.Data.InputType = inputType
	n.node.Data.SaveToField = field
	n.node.Data.Validation = &v
	return n
}

// Placeholder sets the input hint.
func (n *NodeBuilder) Placeholder(text string) *NodeBuilder {
	n.node.Data.Placeholder = text
	return n
}

// Variables declares the placeholders the runtime must resolve in the message.
func (n *NodeBuilder) Variables(vars ...string) *NodeBuilder {
	n.node.Data.Variables = vars
	return n
}

// Trigger configures how a start node is entered.
func (n *NodeBuilder) Trigger(trigger, triggerType string) *NodeBuilder {
	n.node.Data.Trigger = trigger
	n.node.Data.TriggerType = triggerType
	return n
}

// Terminal configures an end node.
func (n *NodeBuilder) Terminal(message string, clearSession bool) *NodeBuilder {
	n.node.Data.EndMessage = message
	n.node.Data.ClearSession = clearSession
	return n
}

// Go adds an unconditional transition to the target node.
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	n.builder.Connect(n.node.ID, "", target, "")
	return n
}

// On adds a transition taken when the choice identified by handle is picked.
func (n *NodeBuilder) On(handle, target, label string) *NodeBuilder {
	n.builder.Connect(n.node.ID, handle, target, label)
	return n
}

// Animated marks the most recent transition leaving this node as animated.
func (n *NodeBuilder) Animated() *NodeBuilder {
	edges := n.builder.edges
	for i := len(edges) - 1; i >= 0; i-- {
		if edges[i].Source == n.node.ID {
			edges[i].Animated = true
			break
		}
	}
	return n
}

// Build returns the underlying domain.Node.
func (n *NodeBuilder) Build() domain.Node {
	return n.node
}

// Required returns a validation for mandatory input bounded in length.
func Required(minLength, maxLength int) domain.Validation {
	return domain.Validation{Required: true, MinLength: &minLength, MaxLength: &maxLength}
}

// Optional returns a validation for input that may be skipped.
func Optional() domain.Validation {
	return domain.Validation{Required: false}
}
