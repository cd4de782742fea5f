package domain

// Language describes one supported language of the flow.
// The order of languages determines vertical stacking in the layout.
type Language struct {
	Code   string `json:"code" mapstructure:"code"`
	Name   string `json:"name" mapstructure:"name"`
	Offset int    `json:"offset" mapstructure:"offset"`
}

// Suffix returns the id suffix shared by every node of the language's subgraph.
func (l Language) Suffix() string {
	return "_" + l.Code
}

// ID appends the language suffix to a base node or handle name.
func (l Language) ID(base string) string {
	return base + l.Suffix()
}
