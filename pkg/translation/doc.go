// Package translation loads and validates the configuration the flow is generated from.
//
// A Config bundles the flow metadata, the ordered language descriptors, the static
// department fallback rows and the translation Table (section -> language -> field ->
// string). The default configuration is embedded in the binary; a file can replace it.
//
// Loading is strict: the document shape is checked against an embedded JSON Schema,
// decoded without unknown keys, and every field declared in Requirements must be present
// and non-blank for every configured language. Missing keys surface as
// *domain.ConstructionError at load time, never as blank strings in the generated flow.
package translation
