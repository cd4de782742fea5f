package domain

// Edge is a directed transition between two nodes.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`

	// SourceHandle disambiguates which button or list row triggered the transition.
	SourceHandle string `json:"sourceHandle,omitempty"`
	Label        string `json:"label,omitempty"`
	Animated     bool   `json:"animated,omitempty"`
}
