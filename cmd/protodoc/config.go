package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// options collects everything one generation run needs. Values come from a
// YAML config file when --config is given; explicitly set flags win.
type options struct {
	Template    string   `yaml:"template"`
	Output      string   `yaml:"output"`
	OutDir      string   `yaml:"out_dir"`
	NoExclude   bool     `yaml:"no_exclude"`
	ImportPaths []string `yaml:"import_paths"`
	Files       []string `yaml:"files"`
}

var (
	flagConfig    string
	flagTemplate  string
	flagOutput    string
	flagOutDir    string
	flagNoExclude bool
	flagImports   []string
)

// addGenerateFlags registers the flags shared by generate and watch.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file with generation options")
	cmd.Flags().StringVarP(&flagTemplate, "template", "t", "html", "output format or path to a Mustache template file")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "index.html", "output file name")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "directory the output file is written to")
	cmd.Flags().BoolVar(&flagNoExclude, "no-exclude", false, "ignore @exclude directives")
	cmd.Flags().StringSliceVarP(&flagImports, "proto-path", "I", nil, "import paths to resolve proto files against")
}

// resolveOptions merges the config file, flags, and positional args.
func resolveOptions(cmd *cobra.Command, args []string) (*options, error) {
	opts := &options{
		Template: flagTemplate,
		Output:   flagOutput,
		OutDir:   flagOutDir,
	}

	if flagConfig != "" {
		data, err := os.ReadFile(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, opts); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", flagConfig, err)
		}
		// Flags set on the command line override file values.
		if cmd.Flags().Changed("template") {
			opts.Template = flagTemplate
		}
		if cmd.Flags().Changed("output") {
			opts.Output = flagOutput
		}
		if cmd.Flags().Changed("out-dir") {
			opts.OutDir = flagOutDir
		}
	}
	if cmd.Flags().Changed("no-exclude") || flagConfig == "" {
		opts.NoExclude = flagNoExclude
	}
	if len(flagImports) > 0 || flagConfig == "" {
		opts.ImportPaths = flagImports
	}
	if len(args) > 0 {
		opts.Files = args
	}

	if len(opts.Files) == 0 {
		return nil, fmt.Errorf("no proto files given")
	}
	if len(opts.ImportPaths) == 0 {
		opts.ImportPaths = []string{"."}
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	return opts, nil
}

// parameter builds the plugin parameter string the session expects.
func (o *options) parameter() string {
	fields := []string{o.Template, o.Output}
	if o.NoExclude {
		fields = append(fields, "no-exclude")
	}
	return strings.Join(fields, ",")
}
