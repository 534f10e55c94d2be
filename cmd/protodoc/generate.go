package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/compiler/protogen"

	"github.com/platinummonkey/protodoc/pkg/compiler"
	"github.com/platinummonkey/protodoc/pkg/session"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] files...",
	Short: "Compile proto files and generate their documentation",
	Args:  cobra.ArbitraryArgs,
	RunE:  runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd, args)
	if err != nil {
		return err
	}
	return generate(cmd.Context(), opts)
}

// generate runs one full compile-build-render cycle and writes the output.
func generate(ctx context.Context, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := compiler.Compile(ctx, opts.ImportPaths, opts.Files)
	if err != nil {
		return err
	}
	req = compiler.WithParameter(req, opts.parameter())

	gen, err := protogen.Options{}.New(req)
	if err != nil {
		return err
	}

	sess, err := session.New(gen.Request.GetParameter(),
		session.WithSourceOpener(compiler.SourceOpener(opts.ImportPaths)))
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

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return err
	}
	target := filepath.Join(opts.OutDir, sess.OutputFile())
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.WithFields(logrus.Fields{
		"files":  len(sess.Files()),
		"output": target,
	}).Info("documentation generated")
	return nil
}
