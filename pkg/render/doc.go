// Package render serializes the documentation tree to its final output form.
//
// # Overview
//
// Two renderers implement the Renderer interface: JSON, which dumps the
// accumulated file list as a structured document, and Template, which executes
// a logic-less Mustache template over the same data. Both consume the exact
// same tree, so counts and names always agree between the two modes.
//
// # Template Context
//
// Templates see a context with one list and two section lambdas:
//
//	{{#files}}            the accumulated file entries
//	{{#p}}...{{/p}}       render enclosed content, wrap paragraphs in <p>..</p>
//	{{#nobr}}...{{/nobr}} render enclosed content, strip all line breaks
//
// # Built-in Formats
//
// Templates bundled under templates/ are resolvable by base name ("html",
// "markdown", "docbook"); any other selector is read as an external template
// file. The literal selector "json" picks the JSON renderer.
//
// # Usage Example
//
//	r, err := render.Resolve("html")
//	if err != nil {
//		return err
//	}
//	out, err := r.Render(files)
//
// # Related Packages
//
//   - pkg/docgen: Produces the FileDoc tree this package renders
//   - pkg/session: Selects the renderer from the plugin parameter string
package render
