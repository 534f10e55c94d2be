// Package session holds the state of one generator invocation.
//
// # Overview
//
// protoc hands the generator a parameter string and a batch of files, and
// expects exactly one output file back. A Session makes that lifecycle
// explicit: New parses the parameter once, AddFile accumulates one document
// entry per input file, and Render produces the final output from the complete
// list. There is no global state; each invocation builds its own Session.
//
// # Parameter String
//
// The parameter has two or three comma-separated fields:
//
//	{template},{output-file}[,no-exclude]
//
// {template} is "json" for raw output, a bundled format name, or a path to an
// external Mustache template. The optional third field must be the literal
// "no-exclude" and disables @exclude directives. Anything else is a usage
// error, raised before any file is processed.
//
// # Usage Example
//
//	sess, err := session.New(req.GetParameter())
//	if err != nil {
//		return err
//	}
//	for _, f := range gen.Files {
//		if !f.Generate {
//			continue
//		}
//		if err := sess.AddFile(f); err != nil {
//			return err
//		}
//	}
//	out, err := sess.Render()
//
// # Related Packages
//
//   - pkg/docgen: Builds the per-file document entries
//   - pkg/render: Renders the accumulated list
package session
