package docgen

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// fieldType returns the display type label for a field. Message-, group- and
// enum-typed fields link to the referenced type; scalars collapse into the
// bool/string/float/int buckets. The label is then wrapped according to the
// field's cardinality.
func fieldType(fd protoreflect.FieldDescriptor) string {
	var label string
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		label = typeURL(string(fd.Message().Name()))
	case protoreflect.EnumKind:
		label = typeURL(string(fd.Enum().Name()))
	default:
		label = scalarTypeName(fd.Kind(), string(fd.Name()))
	}

	switch fd.Cardinality() {
	case protoreflect.Optional:
		label += "?"
	case protoreflect.Repeated:
		label = `<a href="/docs/types.php">array</a> of ` + label
	}
	return label
}

// scalarTypeName maps a scalar kind to its display label. Fields whose name
// contains "date" display as time no matter what their declared kind is; this
// is a deliberate substring match, not a stricter rule.
func scalarTypeName(kind protoreflect.Kind, name string) string {
	if strings.Contains(name, "date") {
		return `<a href="/docs/types.php">time</a>`
	}
	switch kind {
	case protoreflect.BoolKind:
		return `<a href="/docs/types.php">bool</a>`
	case protoreflect.BytesKind, protoreflect.StringKind:
		return `<a href="/docs/types.php">string</a>`
	case protoreflect.DoubleKind, protoreflect.FloatKind:
		return `<a href="/docs/types.php">float</a>`
	case protoreflect.Fixed32Kind, protoreflect.Fixed64Kind,
		protoreflect.Int32Kind, protoreflect.Int64Kind,
		protoreflect.Sfixed32Kind, protoreflect.Sfixed64Kind,
		protoreflect.Sint32Kind, protoreflect.Sint64Kind,
		protoreflect.Uint32Kind, protoreflect.Uint64Kind:
		return `<a href="/docs/types.php">int</a>`
	default:
		return "<unknown>"
	}
}

// typeURL wraps a referenced type name in hyperlink markup.
func typeURL(name string) string {
	return `<a href="/docs/dsl-types.php#` + name + `">` + name + `</a>`
}
