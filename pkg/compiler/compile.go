package compiler

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/platinummonkey/protodoc/pkg/docgen"
)

// Compile parses and links the named proto files against the given import
// paths and assembles the CodeGeneratorRequest protoc would have produced.
// File names must be relative to one of the import paths. The parameter field
// is left empty; callers set it before handing the request to protogen.
func Compile(ctx context.Context, importPaths, files []string) (*pluginpb.CodeGeneratorRequest, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no proto files to compile")
	}

	c := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: importPaths,
		}),
		// Standard source info keeps comments attached to declarations the
		// same way protoc does.
		SourceInfoMode: protocompile.SourceInfoStandard,
	}

	compiled, err := c.Compile(ctx, files...)
	if err != nil {
		return nil, fmt.Errorf("compile failed: %w", err)
	}

	req := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: files,
	}
	seen := make(map[string]bool)
	for _, fd := range compiled {
		appendWithDeps(fd, req, seen)
	}
	EnsureGoPackage(req)
	return req, nil
}

// EnsureGoPackage fills in a synthetic go_package for every file that lacks
// one. protogen refuses files without a resolvable Go import path, but
// documentation input has no reason to carry the option; the synthesized path
// never appears in the output.
func EnsureGoPackage(req *pluginpb.CodeGeneratorRequest) {
	for _, fd := range req.GetProtoFile() {
		if fd.GetOptions().GetGoPackage() != "" {
			continue
		}
		if fd.Options == nil {
			fd.Options = &descriptorpb.FileOptions{}
		}
		fd.Options.GoPackage = proto.String(syntheticGoPackage(fd))
	}
}

// syntheticGoPackage derives a stable import path from the proto package so
// files of the same package agree on it, falling back to the file name.
func syntheticGoPackage(fd *descriptorpb.FileDescriptorProto) string {
	if pkg := fd.GetPackage(); pkg != "" {
		return "protodoc.local/" + strings.ReplaceAll(pkg, ".", "/")
	}
	return "protodoc.local/" + strings.TrimSuffix(path.Base(fd.GetName()), ".proto")
}

// appendWithDeps adds fd and, first, its transitive imports to the request's
// proto_file list, each exactly once and dependencies before dependents.
func appendWithDeps(fd protoreflect.FileDescriptor, req *pluginpb.CodeGeneratorRequest, seen map[string]bool) {
	if seen[fd.Path()] {
		return
	}
	seen[fd.Path()] = true

	imports := fd.Imports()
	for i := 0; i < imports.Len(); i++ {
		appendWithDeps(imports.Get(i).FileDescriptor, req, seen)
	}
	req.ProtoFile = append(req.ProtoFile, protodesc.ToFileDescriptorProto(fd))
}

// WithParameter returns a copy of req carrying the given parameter string.
func WithParameter(req *pluginpb.CodeGeneratorRequest, parameter string) *pluginpb.CodeGeneratorRequest {
	out := proto.Clone(req).(*pluginpb.CodeGeneratorRequest)
	out.Parameter = proto.String(parameter)
	return out
}

// SourceOpener returns an opener that resolves descriptor paths against the
// import roots, matching how the files were located during compilation.
func SourceOpener(importPaths []string) docgen.SourceOpener {
	return func(path string) (io.ReadCloser, error) {
		var firstErr error
		for _, root := range importPaths {
			f, err := os.Open(filepath.Join(root, path))
			if err == nil {
				return f, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		if f, err := os.Open(path); err == nil {
			return f, nil
		}
		if firstErr == nil {
			firstErr = &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
		}
		return nil, firstErr
	}
}
