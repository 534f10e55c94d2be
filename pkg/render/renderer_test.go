package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinummonkey/protodoc/pkg/docgen"
)

func sampleFiles() []*docgen.FileDoc {
	return []*docgen.FileDoc{
		{
			Name:        "widgets.proto",
			Description: "Widget definitions.",
			Package:     "widgets.v1",
			Messages: []*docgen.MessageDoc{
				{
					Name:        "Widget",
					Description: "A widget.\n\nSecond paragraph.",
					HasFields:   true,
					Fields: []*docgen.FieldDoc{
						{Name: "name", Description: "Display\nname.", Type: `<a href="/docs/types.php">string</a>?`},
					},
				},
				{Name: "Empty", Fields: []*docgen.FieldDoc{}},
			},
			Enums: []*docgen.EnumDoc{
				{
					Name: "Phase",
					Values: []*docgen.EnumValueDoc{
						{Name: "PHASE_BETA", Number: 1, Description: "Early access."},
					},
				},
			},
		},
	}
}

func TestJSONRender(t *testing.T) {
	out, err := JSON{}.Render(sampleFiles())
	require.NoError(t, err)

	var tree []map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &tree))
	require.Len(t, tree, 1)
	assert.Equal(t, "widgets.proto", tree[0]["file_name"])
	assert.Equal(t, "widgets.v1", tree[0]["file_package"])

	messages, ok := tree[0]["file_messages"].([]interface{})
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestTemplateRender(t *testing.T) {
	tmpl := &Template{
		Name:   "inline",
		Source: "{{#files}}{{file_name}}:{{#file_messages}}{{message_name}},{{/file_messages}}{{/files}}",
	}
	out, err := tmpl.Render(sampleFiles())
	require.NoError(t, err)
	assert.Equal(t, "widgets.proto:Widget,Empty,", string(out))
}

func TestTemplateRenderTypeMarkupSurvives(t *testing.T) {
	tmpl := &Template{
		Name:   "inline",
		Source: "{{#files}}{{#file_messages}}{{#message_fields}}{{{field_type}}}{{/message_fields}}{{/file_messages}}{{/files}}",
	}
	out, err := tmpl.Render(sampleFiles())
	require.NoError(t, err)
	assert.Equal(t, `<a href="/docs/types.php">string</a>?`, string(out))
}

func TestParagraphFilter(t *testing.T) {
	tmpl := &Template{
		Name:   "inline",
		Source: "{{#files}}{{#file_messages}}{{#p}}{{message_description}}{{/p}};{{/file_messages}}{{/files}}",
	}
	out, err := tmpl.Render(sampleFiles())
	require.NoError(t, err)
	assert.Contains(t, string(out), "<p>A widget.</p><p>Second paragraph.</p>;")
	assert.Contains(t, string(out), "<p></p>;")
}

func TestNoLineBreakFilter(t *testing.T) {
	tmpl := &Template{
		Name:   "inline",
		Source: "{{#files}}{{#file_messages}}{{#message_fields}}{{#nobr}}{{field_description}}{{/nobr}}{{/message_fields}}{{/file_messages}}{{/files}}",
	}
	out, err := tmpl.Render(sampleFiles())
	require.NoError(t, err)
	assert.Equal(t, "Displayname.", string(out))
}

func TestNoLineBreakFilterOrder(t *testing.T) {
	got, err := noLineBreakFilter("ignored", func(string) (string, error) {
		return "a\r\nb\rc\nd", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)
}

func TestParagraphFilterLineEndingStyles(t *testing.T) {
	got, err := paragraphFilter("ignored", func(string) (string, error) {
		return "one\r\n\r\ntwo\n   \nthree", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>one</p><p>two</p><p>three</p>", got)
}

// Raw mode and template mode must expose identical data.
func TestRenderModesAgree(t *testing.T) {
	files := sampleFiles()

	raw, err := JSON{}.Render(files)
	require.NoError(t, err)
	var tree []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &tree))

	tmpl := &Template{
		Name:   "inline",
		Source: "{{#files}}{{#file_messages}}m{{/file_messages}}{{#file_enums}}e{{/file_enums}}{{/files}}",
	}
	out, err := tmpl.Render(files)
	require.NoError(t, err)

	messages := 0
	enums := 0
	for _, f := range tree {
		messages += len(f["file_messages"].([]interface{}))
		enums += len(f["file_enums"].([]interface{}))
	}
	var echoed string
	for i := 0; i < messages; i++ {
		echoed += "m"
	}
	for i := 0; i < enums; i++ {
		echoed += "e"
	}
	assert.Equal(t, echoed, string(out))
}

func TestRenderErrorFormat(t *testing.T) {
	err := &RenderError{Template: "html", Pos: 12, Message: "unmatched open tag"}
	assert.Equal(t, "html:12: unmatched open tag", err.Error())

	err = &RenderError{Template: "html", Partial: "footer", Pos: 3, Message: "boom"}
	assert.Equal(t, "html in partial footer:3: boom", err.Error())
}

func TestNewRenderErrorParsesLine(t *testing.T) {
	err := newRenderError("custom.mustache", assert.AnError)
	assert.Equal(t, "custom.mustache", err.Template)
	assert.Equal(t, 0, err.Pos)
}

func TestTemplateRenderError(t *testing.T) {
	tmpl := &Template{Name: "broken", Source: "{{#files}} never closed"}
	_, err := tmpl.Render(sampleFiles())
	require.Error(t, err)

	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "broken", re.Template)
}
