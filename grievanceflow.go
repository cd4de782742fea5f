package grievanceflow

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/grievanceflow/internal/logging"
	"github.com/aretw0/grievanceflow/internal/validator"
	"github.com/aretw0/grievanceflow/pkg/adapters/file"
	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/aretw0/grievanceflow/pkg/flow"
	"github.com/aretw0/grievanceflow/pkg/translation"
)

// DefaultOutput is the file name the flow is written to when no path is given.
const DefaultOutput = "collectorate_jharsugda_complete_trilingual_flow.json"

// Generator is the high-level entry point of the library.
// It binds a configuration to the assembler and the output writer.
type Generator struct {
	cfg        *translation.Config
	configPath string
	edgeIDs    flow.EdgeIDStrategy
	validate   bool
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithConfig uses an already loaded configuration instead of the embedded one.
func WithConfig(cfg *translation.Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

// WithConfigFile loads the configuration from a YAML or JSON file.
func WithConfigFile(path string) Option {
	return func(g *Generator) {
		g.configPath = path
	}
}

// WithEdgeIDs selects the edge id strategy (default: derived).
func WithEdgeIDs(s flow.EdgeIDStrategy) Option {
	return func(g *Generator) {
		g.edgeIDs = s
	}
}

// WithValidation lints every generated document; errors fail Generate and
// warnings are logged.
func WithValidation(enabled bool) Option {
	return func(g *Generator) {
		g.validate = enabled
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New initializes a Generator. Without options it uses the embedded
// tri-lingual configuration. Configuration problems surface here, before any
// document is built.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{edgeIDs: flow.EdgeIDDerived}
	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = logging.NewNop()
	}

	switch {
	case g.cfg != nil:
		if err := g.cfg.Validate(); err != nil {
			return nil, err
		}
	case g.configPath != "":
		cfg, err := translation.LoadFile(g.configPath)
		if err != nil {
			return nil, err
		}
		g.cfg = cfg
		g.logger = g.logger.With("config", g.configPath)
	default:
		cfg, err := translation.Default()
		if err != nil {
			return nil, err
		}
		g.cfg = cfg
	}

	if !g.edgeIDs.Valid() {
		return nil, fmt.Errorf("unknown edge id strategy %q", g.edgeIDs)
	}
	return g, nil
}

// Config returns the loaded configuration.
func (g *Generator) Config() *translation.Config {
	return g.cfg
}

// Generate assembles the flow document.
func (g *Generator) Generate() (*domain.Document, error) {
	doc, err := flow.Assemble(g.cfg,
		flow.WithLogger(g.logger),
		flow.WithEdgeIDs(g.edgeIDs),
	)
	if err != nil {
		return nil, err
	}

	if g.validate {
		report := validator.Validate(doc)
		for _, w := range report.Warnings {
			g.logger.Warn("flow validation", "issue", w.Error())
		}
		if err := report.Err(); err != nil {
			return nil, fmt.Errorf("generated flow is invalid: %w", err)
		}
	}
	return doc, nil
}

// Write serializes the document to path (DefaultOutput when empty).
func (g *Generator) Write(path string, doc *domain.Document) error {
	if path == "" {
		path = DefaultOutput
	}
	if err := file.WriteDocument(path, doc); err != nil {
		return err
	}
	g.logger.Debug("flow written", "path", path, "nodes", len(doc.Nodes), "edges", len(doc.Edges))
	return nil
}

// LanguageNames returns the display names of the configured languages, in order.
func (g *Generator) LanguageNames() []string {
	names := make([]string, 0, len(g.cfg.Languages))
	for _, l := range g.cfg.Languages {
		names = append(names, l.Name)
	}
	return names
}
