// Package flow assembles the multi-lingual citizen-services flow document.
//
// The document is a fixed skeleton (start, language selection, end) around one
// subgraph per configured language. Every language subgraph is produced by the same
// builder, BuildLanguageSubgraph, so the subgraphs only differ in text, id suffix and
// vertical offset.
//
// Assemble is a pure function of its configuration: the same Config always yields the
// same Document, byte for byte once serialized.
package flow
