/*
Package dsl provides a fluent builder for flow documents.

It replaces hand-written node and edge literals with a type-safe builder, so that
repeated subgraphs are produced by one parameterized function instead of copies.
Edges are declared on the node they leave and receive deterministic ids derived from
(source, handle, target), which keeps builders composable: ids do not depend on
emission order.

Example usage:

	b := dsl.New()

	b.Add("ask_name", domain.NodeTypeUserInput).
		At(950, 50).
		Label("Citizen Name").
		Message("Please enter your full name:").
		Input("text", "citizenName", dsl.Required(2, 100)).
		Go("thanks")

	b.Add("thanks", domain.NodeTypeTextMessage).
		Message("Thank you, {{citizenName}}!")

	nodes, edges, err := b.Build()
*/
package dsl
