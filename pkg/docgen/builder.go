package docgen

import (
	"path/filepath"
	"sort"

	"google.golang.org/protobuf/compiler/protogen"
)

// Builder walks proto files and produces their documentation entries.
//
// The zero value is ready to use: exclusion directives are honored and source
// files are opened straight from disk.
type Builder struct {
	// NoExclude keeps nodes annotated with @exclude in the output.
	NoExclude bool

	// Open resolves a descriptor path to its source text for the file-level
	// comment scan. Defaults to os.Open.
	Open SourceOpener
}

// BuildFile builds the documentation entry for one file. It returns (nil, nil)
// when the file is excluded, and an error when the source cannot be read for
// the file-level comment scan; in that case no partial entry is produced.
func (b *Builder) BuildFile(f *protogen.File) (*FileDoc, error) {
	description, excluded, err := fileDescription(b.Open, f.Desc.Path(), b.NoExclude)
	if err != nil {
		return nil, err
	}
	if excluded {
		return nil, nil
	}

	doc := &FileDoc{
		Name:        filepath.Base(f.Desc.Path()),
		Description: description,
		Package:     string(f.Desc.Package()),
		Messages:    []*MessageDoc{},
		Enums:       []*EnumDoc{},
	}

	for _, m := range f.Messages {
		b.addMessage(m, doc)
	}
	// Top-level enums come after any lifted from message nesting.
	for _, e := range f.Enums {
		b.addEnum(e, doc)
	}
	return doc, nil
}

// addMessage appends m and, depth-first, every nested message to the file's
// flat message list. An excluded message prunes its whole subtree.
func (b *Builder) addMessage(m *protogen.Message, doc *FileDoc) {
	description, excluded := Description(m.Comments, b.NoExclude)
	if excluded {
		return
	}

	md := &MessageDoc{
		Name:        string(m.Desc.Name()),
		Description: description,
		Fields:      []*FieldDoc{},
	}
	for _, f := range m.Fields {
		if fd := b.buildField(f); fd != nil {
			md.Fields = append(md.Fields, fd)
		}
	}
	sort.SliceStable(md.Fields, func(i, j int) bool {
		return md.Fields[i].Name < md.Fields[j].Name
	})
	md.HasFields = len(md.Fields) > 0
	doc.Messages = append(doc.Messages, md)

	for _, nested := range m.Messages {
		b.addMessage(nested, doc)
	}
	for _, e := range m.Enums {
		b.addEnum(e, doc)
	}
}

// buildField returns the documentation entry for a field, or nil if the field
// is excluded.
func (b *Builder) buildField(f *protogen.Field) *FieldDoc {
	description, excluded := Description(f.Comments, b.NoExclude)
	if excluded {
		return nil
	}
	return &FieldDoc{
		Name:        string(f.Desc.Name()),
		Description: description,
		Type:        fieldType(f.Desc),
	}
}

// addEnum appends e to the file's flat enum list unless it is excluded.
func (b *Builder) addEnum(e *protogen.Enum, doc *FileDoc) {
	description, excluded := Description(e.Comments, b.NoExclude)
	if excluded {
		return
	}

	ed := &EnumDoc{
		Name:        string(e.Desc.Name()),
		Description: description,
		Values:      []*EnumValueDoc{},
	}
	for _, v := range e.Values {
		valueDescription, valueExcluded := Description(v.Comments, b.NoExclude)
		if valueExcluded {
			continue
		}
		ed.Values = append(ed.Values, &EnumValueDoc{
			Name:        string(v.Desc.Name()),
			Number:      int32(v.Desc.Number()),
			Description: valueDescription,
		})
	}
	sort.SliceStable(ed.Values, func(i, j int) bool {
		return ed.Values[i].Name < ed.Values[j].Name
	})
	doc.Enums = append(doc.Enums, ed)
}
