package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cbroglie/mustache"

	"github.com/platinummonkey/protodoc/pkg/docgen"
)

// Renderer turns the accumulated file list into the final output bytes.
type Renderer interface {
	Render(files []*docgen.FileDoc) ([]byte, error)
}

// JSON renders the file list as an indented JSON array.
type JSON struct{}

// Render implements Renderer.
func (JSON) Render(files []*docgen.FileDoc) ([]byte, error) {
	out, err := json.MarshalIndent(files, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to create JSON document: %w", err)
	}
	return append(out, '\n'), nil
}

// Template renders the file list through a Mustache template.
type Template struct {
	// Name identifies the template in error messages: the format name for
	// built-ins, the file path for external templates.
	Name string

	// Source is the template text.
	Source string

	// Partials resolves {{>name}} references. May be nil.
	Partials mustache.PartialProvider
}

// Render implements Renderer.
func (t *Template) Render(files []*docgen.FileDoc) ([]byte, error) {
	tree, err := contextTree(files)
	if err != nil {
		return nil, err
	}

	ctx := map[string]interface{}{
		"files": tree,
		"p":     mustache.LambdaFunc(paragraphFilter),
		"nobr":  mustache.LambdaFunc(noLineBreakFilter),
	}

	var out string
	if t.Partials != nil {
		out, err = mustache.RenderPartials(t.Source, t.Partials, ctx)
	} else {
		out, err = mustache.Render(t.Source, ctx)
	}
	if err != nil {
		return nil, newRenderError(t.Name, err)
	}
	return []byte(out), nil
}

// contextTree converts the typed document model into a generic tree keyed the
// way templates expect (file_name, message_fields, ...). Going through the
// JSON encoding guarantees template mode and raw mode expose identical data.
func contextTree(files []*docgen.FileDoc) (interface{}, error) {
	data, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("failed to create JSON document: %w", err)
	}
	var tree interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to create JSON document: %w", err)
	}
	return tree, nil
}

var blankLines = regexp.MustCompile(`(\n|\r|\r\n)\s*(\n|\r|\r\n)`)

// paragraphFilter renders the enclosed content and wraps each blank-line
// separated segment in <p>..</p>.
func paragraphFilter(text string, render mustache.RenderFunc) (string, error) {
	rendered, err := render(text)
	if err != nil {
		return "", err
	}
	return "<p>" + strings.Join(blankLines.Split(rendered, -1), "</p><p>") + "</p>", nil
}

// noLineBreakFilter renders the enclosed content and strips every line-ending
// sequence. \r\n goes first so no stray \r or \n survives.
func noLineBreakFilter(text string, render mustache.RenderFunc) (string, error) {
	rendered, err := render(text)
	if err != nil {
		return "", err
	}
	for _, seq := range []string{"\r\n", "\r", "\n"} {
		rendered = strings.ReplaceAll(rendered, seq, "")
	}
	return rendered, nil
}

// RenderError is a template execution failure, formatted on a single line as
// "template[ in partial X]:pos: message".
type RenderError struct {
	Template string
	Partial  string
	Pos      int
	Message  string
}

func (e *RenderError) Error() string {
	location := e.Template
	if e.Partial != "" {
		location += " in partial " + e.Partial
	}
	return fmt.Sprintf("%s:%d: %s", location, e.Pos, e.Message)
}

var lineError = regexp.MustCompile(`^line (\d+): (.*)$`)

// newRenderError wraps a mustache error, lifting the line position out of the
// message when the engine reports one.
func newRenderError(template string, err error) *RenderError {
	re := &RenderError{Template: template, Message: err.Error()}
	if m := lineError.FindStringSubmatch(err.Error()); m != nil {
		if pos, convErr := strconv.Atoi(m[1]); convErr == nil {
			re.Pos = pos
			re.Message = m[2]
		}
	}
	return re
}
