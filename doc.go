/*
Package grievanceflow generates the declarative chatbot flow of the Collectorate Jharsugda
Odisha citizen-services bot, in English, Hindi and Odia.

The output is a single JSON document (metadata, nodes, edges, viewport) for a flow
builder. A runtime interprets it later; this package never executes the flow.

# Concept

The flow is a fixed skeleton around one subgraph per language:

	start_node -> language_selection -+-> main_menu_en -> ... -> success_message_en -+-> end_node
	                                  +-> main_menu_hi -> ... -> success_message_hi -+
	                                  +-> main_menu_or -> ... -> success_message_or -+

Every language subgraph is built by the same function from a translation table, so the
subgraphs are structurally identical and only differ in text, the `_<code>` id suffix and
their vertical position in the editor.

# Configuration

The translation table, language descriptors and flow metadata are embedded as YAML. A
file with the same shape can replace them. Loading is strict: a missing or blank
translation fails with a *domain.ConstructionError naming section, language and field.

# Usage

	gen, err := grievanceflow.New()
	if err != nil {
		log.Fatal(err)
	}
	doc, err := gen.Generate()
	if err != nil {
		log.Fatal(err)
	}
	if err := gen.Write(grievanceflow.DefaultOutput, doc); err != nil {
		log.Fatal(err)
	}

The grievanceflow command wraps the same calls and adds validation, Mermaid export and a
terminal preview.
*/
package grievanceflow
