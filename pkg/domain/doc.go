/*
Package domain contains the data model of a generated chatbot flow document.

It defines the entities the downstream flow runtime consumes, serialized in the
shape of the visual flow builder: a Document holding Metadata, an ordered list of
Nodes, an ordered list of Edges and the Viewport. The package is kept free of I/O;
loading translations and writing files live in adapters.

# Key Entities

  - Node: one step of the conversation (message, input capture, branch point, start/end anchor).
  - Edge: a directed transition, optionally keyed by the choice (SourceHandle) that triggers it.
  - Language: a supported language, whose code suffixes every node id of its subgraph.
  - ConstructionError / OutputWriteError: the two failure classes of generation.
*/
package domain
