// Package compiler compiles .proto sources without protoc.
//
// # Overview
//
// The plugin normally receives descriptors from protoc over stdin. This
// package produces the same CodeGeneratorRequest directly, using protocompile
// with standard source info so doc comments survive, which lets the standalone
// CLI drive the identical generation pipeline.
//
// # Usage Example
//
//	req, err := compiler.Compile(ctx, []string{"proto"}, []string{"widgets.proto"})
//	if err != nil {
//		return err
//	}
//	gen, err := protogen.Options{}.New(req)
//
// # Watch Mode
//
// Watch observes the import roots with fsnotify and re-runs a callback after a
// short debounce whenever a .proto file is written, so documentation stays
// current while schemas are being edited.
//
// # Related Packages
//
//   - pkg/session: Consumes the request through protogen
package compiler
