// Package docgen builds the documentation tree for a batch of proto files.
//
// # Overview
//
// This package walks the descriptor tree of each input file (messages, nested
// messages, enums, fields) and produces the intermediate document model that the
// renderers consume. Along the way it extracts doc comments, honors @exclude
// directives, formats field type labels, and sorts field and enum value lists.
//
// # Document Model
//
// The model mirrors the shape of the rendered output:
//
//	FileDoc
//	├── MessageDoc (nested messages flattened into this list)
//	│   └── FieldDoc (sorted by name)
//	└── EnumDoc (nested enums flattened into this list)
//	    └── EnumValueDoc (sorted by name)
//
// # Comment Extraction
//
// Node-level descriptions come from the leading and trailing comments protoc
// attaches to each declaration. Only doc-style blocks (/** ... */ and ///) are
// treated as documentation; plain // comments are ignored. File-level
// descriptions have no descriptor API, so the source file is re-opened and its
// first comment block is scanned out of the raw text.
//
// # Exclusion
//
// A description starting with @exclude removes the node and its entire subtree
// from the output. The no-exclude override keeps the node but still strips the
// directive token from the description.
//
// # Usage Example
//
//	b := &docgen.Builder{}
//	doc, err := b.BuildFile(file) // file is a *protogen.File
//	if err != nil {
//		return err
//	}
//	if doc == nil {
//		// file was excluded
//	}
//
// # Related Packages
//
//   - pkg/render: Serializes the document tree to JSON or template output
//   - pkg/session: Drives BuildFile across a whole compiler batch
package docgen
