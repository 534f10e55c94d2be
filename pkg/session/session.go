package session

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/compiler/protogen"

	"github.com/platinummonkey/protodoc/pkg/docgen"
	"github.com/platinummonkey/protodoc/pkg/render"
)

// Session accumulates the document entries for one generator invocation and
// renders them once the batch is complete.
type Session struct {
	outputFile string
	renderer   render.Renderer
	builder    docgen.Builder
	files      []*docgen.FileDoc
}

// Option configures a Session beyond what the parameter string carries.
type Option func(*Session)

// WithSourceOpener installs the opener used for the file-level comment scan.
// The standalone front-end uses this to resolve paths against import roots.
func WithSourceOpener(open docgen.SourceOpener) Option {
	return func(s *Session) { s.builder.Open = open }
}

// New parses the plugin parameter string and returns a ready Session. A
// malformed parameter fails here, before any file is processed.
func New(parameter string, opts ...Option) (*Session, error) {
	tokens := strings.Split(parameter, ",")
	if len(tokens) != 2 && len(tokens) != 3 {
		return nil, usageError()
	}

	noExclude := false
	if len(tokens) == 3 {
		if tokens[2] != "no-exclude" {
			return nil, usageError()
		}
		noExclude = true
	}

	renderer, err := render.Resolve(tokens[0])
	if err != nil {
		return nil, err
	}

	s := &Session{
		outputFile: tokens[1],
		renderer:   renderer,
		builder:    docgen.Builder{NoExclude: noExclude},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AddFile builds the document entry for f and appends it to the session.
// Excluded files are skipped silently; I/O failures abort the invocation.
func (s *Session) AddFile(f *protogen.File) error {
	doc, err := s.builder.BuildFile(f)
	if err != nil {
		return err
	}
	if doc != nil {
		s.files = append(s.files, doc)
	}
	return nil
}

// Render produces the final output from every file added so far.
func (s *Session) Render() ([]byte, error) {
	return s.renderer.Render(s.files)
}

// OutputFile returns the configured output file name.
func (s *Session) OutputFile() string {
	return s.outputFile
}

// Files returns the accumulated document entries, in input order.
func (s *Session) Files() []*docgen.FileDoc {
	return s.files
}

func usageError() error {
	return fmt.Errorf(
		"Usage: --doc_out=%s|<TEMPLATE_FILENAME>,<OUT_FILENAME>[,no-exclude]:<OUT_DIR>",
		strings.Join(append(render.Formats(), "json"), "|"))
}
