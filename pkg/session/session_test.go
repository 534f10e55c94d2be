package session_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/compiler/protogen"

	"github.com/platinummonkey/protodoc/pkg/compiler"
	"github.com/platinummonkey/protodoc/pkg/session"
)

func TestNewParameterValidation(t *testing.T) {
	tests := []struct {
		name      string
		parameter string
		wantErr   bool
	}{
		{"json mode", "json,schema.json", false},
		{"builtin template", "html,index.html", false},
		{"with no-exclude", "json,schema.json,no-exclude", false},
		{"one field", "json", true},
		{"four fields", "json,out,no-exclude,extra", true},
		{"bad third field", "json,out,noexclude", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := session.New(tt.parameter)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "Usage:")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewMissingExternalTemplate(t *testing.T) {
	_, err := session.New(filepath.Join(t.TempDir(), "gone.mustache") + ",out.html")
	require.Error(t, err)
}

func TestNewOutputFile(t *testing.T) {
	sess, err := session.New("json,schema.json")
	require.NoError(t, err)
	assert.Equal(t, "schema.json", sess.OutputFile())
}

// library builds a session over the compiled library schema.
func library(t *testing.T, parameter string) *session.Session {
	t.Helper()

	req, err := compiler.Compile(context.Background(), []string{"testdata"}, []string{"library.proto"})
	require.NoError(t, err)
	gen, err := protogen.Options{}.New(compiler.WithParameter(req, parameter))
	require.NoError(t, err)

	sess, err := session.New(gen.Request.GetParameter(),
		session.WithSourceOpener(compiler.SourceOpener([]string{"testdata"})))
	require.NoError(t, err)

	for _, f := range gen.Files {
		if !f.Generate {
			continue
		}
		require.NoError(t, sess.AddFile(f))
	}
	return sess
}

func TestSessionRawMode(t *testing.T) {
	sess := library(t, "json,schema.json")
	require.Len(t, sess.Files(), 1)

	out, err := sess.Render()
	require.NoError(t, err)

	var tree []map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &tree))
	require.Len(t, tree, 1)
	assert.Equal(t, "library.proto", tree[0]["file_name"])
	assert.Equal(t, "library.v1", tree[0]["file_package"])
	assert.Equal(t, "Library catalog schema.", tree[0]["file_description"])
}

func TestSessionTemplateMode(t *testing.T) {
	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "names.mustache")
	tmplSource := "{{#files}}{{#file_messages}}{{message_name}}\n{{/file_messages}}{{#file_enums}}{{enum_name}}\n{{/file_enums}}{{/files}}"
	require.NoError(t, os.WriteFile(tmplPath, []byte(tmplSource), 0o644))

	sess := library(t, tmplPath+",doc.txt")
	out, err := sess.Render()
	require.NoError(t, err)
	assert.Equal(t, "Book\nLoanState\n", string(out))
}

// The two rendering modes must agree on the underlying data.
func TestSessionModesAgree(t *testing.T) {
	raw, err := library(t, "json,schema.json").Render()
	require.NoError(t, err)
	var tree []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &tree))

	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "count.mustache")
	require.NoError(t, os.WriteFile(tmplPath,
		[]byte("{{#files}}{{#file_messages}}m{{/file_messages}}{{#file_enums}}e{{/file_enums}}{{/files}}"), 0o644))

	templated, err := library(t, tmplPath+",doc.txt").Render()
	require.NoError(t, err)

	messages := len(tree[0]["file_messages"].([]interface{}))
	enums := len(tree[0]["file_enums"].([]interface{}))
	assert.Equal(t, messages, strings.Count(string(templated), "m"))
	assert.Equal(t, enums, strings.Count(string(templated), "e"))
}
