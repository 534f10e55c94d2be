// protoc-gen-doc is a protoc plugin that generates human-readable
// documentation from proto files. The output format and file name come from
// the plugin parameter:
//
//	protoc --doc_out=html,index.html:doc *.proto
//	protoc --doc_out=json,schema.json,no-exclude:doc *.proto
package main

import (
	"fmt"
	"io"
	"os"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/platinummonkey/protodoc/pkg/compiler"
	"github.com/platinummonkey/protodoc/pkg/session"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "protoc-gen-doc: %v\n", err)
		os.Exit(1)
	}
}

// run speaks the plugin protocol: a CodeGeneratorRequest on stdin, a
// CodeGeneratorResponse on stdout. Generation failures are reported inside
// the response so protoc surfaces them on its error channel; only protocol
// failures return an error here.
func run(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(data, req); err != nil {
		return err
	}
	// Documentation input rarely carries go_package; protogen insists on it.
	compiler.EnsureGoPackage(req)

	gen, err := protogen.Options{}.New(req)
	if err != nil {
		return err
	}
	gen.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)

	if err := generate(gen); err != nil {
		gen.Error(err)
	}

	resp, err := proto.Marshal(gen.Response())
	if err != nil {
		return err
	}
	_, err = out.Write(resp)
	return err
}

// generate drives one session over the batch and writes the single output
// file through protoc's managed stream.
func generate(gen *protogen.Plugin) error {
	sess, err := session.New(gen.Request.GetParameter())
	if err != nil {
		return err
	}
	for _, f := range gen.Files {
		if !f.Generate {
			continue
		}
		if err := sess.AddFile(f); err != nil {
			return err
		}
	}

	out, err := sess.Render()
	if err != nil {
		return err
	}
	g := gen.NewGeneratedFile(sess.OutputFile(), "")
	_, err = g.Write(out)
	return err
}
