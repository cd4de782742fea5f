package flow

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/grievanceflow/internal/logging"
	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/aretw0/grievanceflow/pkg/dsl"
	"github.com/aretw0/grievanceflow/pkg/translation"
)

// Ids of the language-independent anchors.
const (
	NodeStart             = "start_node"
	NodeLanguageSelection = "language_selection"
	NodeEnd               = "end_node"
)

// assembler holds the options of one Assemble call.
type assembler struct {
	logger  *slog.Logger
	edgeIDs EdgeIDStrategy
}

// Option configures Assemble.
type Option func(*assembler)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *assembler) {
		a.logger = logger
	}
}

// WithEdgeIDs selects how edge ids are produced (default: EdgeIDDerived).
func WithEdgeIDs(s EdgeIDStrategy) Option {
	return func(a *assembler) {
		a.edgeIDs = s
	}
}

// Assemble builds the complete flow document from cfg.
// cfg is validated first, so a config built in code gets the same checks as a
// loaded one: it fails with a *domain.ConstructionError on the first missing
// translation, missing placeholder or malformed language descriptor. No partial
// document is returned.
func Assemble(cfg *translation.Config, opts ...Option) (*domain.Document, error) {
	a := &assembler{edgeIDs: EdgeIDDerived}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logging.NewNop()
	}
	if !a.edgeIDs.Valid() {
		return nil, fmt.Errorf("unknown edge id strategy %q", a.edgeIDs)
	}
	if cfg == nil {
		return nil, &domain.ConstructionError{Reason: "no configuration"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root := dsl.New()

	prompt, err := languagePrompt(cfg)
	if err != nil {
		return nil, err
	}

	root.Add(NodeStart, domain.NodeTypeStart).
		At(colStart, anchorRow).
		Label("Start").
		Trigger(cfg.Flow.Trigger, cfg.Flow.TriggerType).
		Go(NodeLanguageSelection).
		Animated()

	selection := root.Add(NodeLanguageSelection, domain.NodeTypeButtonMessage).
		At(colLanguage, anchorRow).
		Label("Language Selection").
		Message(prompt)

	for _, lang := range cfg.Languages {
		text, err := cfg.Sections.Lookup(translation.SectionLanguageSelection, lang.Code, translation.FieldLanguageButton)
		if err != nil {
			return nil, err
		}
		selection.Button(lang.ID("btn"), text)
	}

	for _, lang := range cfg.Languages {
		root.Connect(NodeLanguageSelection, lang.ID("btn"), lang.ID(NodeMainMenu), lang.Name)

		nodes, edges, err := BuildLanguageSubgraph(cfg, lang)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("language subgraph built",
			"lang", lang.Code,
			"nodes", len(nodes),
			"edges", len(edges),
		)
		root.Append(nodes, edges)
	}

	root.Add(NodeEnd, domain.NodeTypeEnd).
		At(colEnd, anchorRow).
		Label("End").
		Terminal(cfg.Flow.EndMessage, true)

	for _, lang := range cfg.Languages {
		root.Connect(lang.ID(NodeSuccessMessage), "", NodeEnd, "")
	}

	nodes, edges, err := root.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to assemble flow: %w", err)
	}
	if a.edgeIDs == EdgeIDSequential {
		renumber(edges)
	}

	doc := &domain.Document{
		Metadata: domain.Metadata{
			Name:        cfg.Flow.Name,
			Description: cfg.Flow.Description,
			CompanyID:   cfg.Flow.CompanyID,
			Version:     cfg.Flow.Version,
			IsActive:    cfg.Flow.Active,
		},
		Nodes:    nodes,
		Edges:    edges,
		Viewport: domain.DefaultViewport,
	}

	a.logger.Debug("flow assembled",
		"languages", len(cfg.Languages),
		"nodes", len(doc.Nodes),
		"edges", len(doc.Edges),
		"edge_ids", string(a.edgeIDs),
	)
	return doc, nil
}

// languagePrompt joins the welcome header with every language's selection prompt.
func languagePrompt(cfg *translation.Config) (string, error) {
	lines := make([]string, 0, len(cfg.Languages))
	for _, lang := range cfg.Languages {
		p, err := cfg.Sections.Lookup(translation.SectionLanguageSelection, lang.Code, translation.FieldLanguagePrompt)
		if err != nil {
			return "", err
		}
		lines = append(lines, p)
	}
	prompt := strings.Join(lines, "\n")
	if cfg.Flow.Welcome == "" {
		return prompt, nil
	}
	return cfg.Flow.Welcome + "\n\n" + prompt, nil
}
