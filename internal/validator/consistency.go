package validator

import (
	"reflect"

	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/aretw0/grievanceflow/pkg/flow"
	"github.com/samber/lo"
)

// checkPlaceholders warns when message text uses a token the node does not declare.
// The runtime only resolves declared variables.
func checkPlaceholders(doc *domain.Document, r *Report) {
	for _, n := range doc.Nodes {
		used := domain.Placeholders(n.Data.MessageText)
		if len(used) == 0 {
			continue
		}
		missing, _ := lo.Difference(used, n.Data.Variables)
		for _, v := range missing {
			r.warnf(n.ID, "", "placeholder {{%s}} is not declared in variables", v)
		}
	}
}

// checkIsomorphism warns when a language subgraph differs in structure from the first one.
func checkIsomorphism(doc *domain.Document, r *Report) {
	langs := flow.Languages(doc)
	if len(langs) < 2 {
		return
	}
	reference := flow.LanguageShape(doc, langs[0])
	for _, code := range langs[1:] {
		shape := flow.LanguageShape(doc, code)
		if !reflect.DeepEqual(reference, shape) {
			r.warnf(flow.NodeMainMenu+"_"+code, "", "language %s subgraph differs in structure from %s (%d nodes/%d edges vs %d/%d)",
				code, langs[0], len(shape.Nodes), len(shape.Edges), len(reference.Nodes), len(reference.Edges))
		}
	}
}
