// protodoc generates proto documentation without requiring protoc: it
// compiles the given .proto files itself and runs them through the same
// pipeline as the protoc-gen-doc plugin.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/platinummonkey/protodoc/pkg/render"
)

var log = logrus.New()

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:           "protodoc",
	Short:         "Generate documentation from proto files",
	Long:          "Protodoc compiles .proto files with an embedded compiler and renders their documentation as JSON or through a Mustache template.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	// No Run — prints help by default.
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the built-in output formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("json")
		for _, format := range render.Formats() {
			fmt.Println(format)
		}
	},
}

func init() {
	log.SetOutput(os.Stderr)
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(formatsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("generation failed")
		os.Exit(1)
	}
}
