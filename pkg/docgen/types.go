package docgen

// FileDoc is the documentation entry for a single proto file. Nested messages
// and enums from anywhere in the file are flattened into Messages and Enums.
type FileDoc struct {
	Name        string        `json:"file_name"`
	Description string        `json:"file_description"`
	Package     string        `json:"file_package"`
	Messages    []*MessageDoc `json:"file_messages"`
	Enums       []*EnumDoc    `json:"file_enums"`
}

// MessageDoc is the documentation entry for a message. Fields are sorted
// ascending by name, not in declaration order.
type MessageDoc struct {
	Name        string      `json:"message_name"`
	Description string      `json:"message_description"`
	HasFields   bool        `json:"message_has_fields"`
	Fields      []*FieldDoc `json:"message_fields"`
}

// FieldDoc is the documentation entry for a field. Type is a display label and
// may contain hyperlink markup; renderers must emit it unescaped.
type FieldDoc struct {
	Name        string `json:"field_name"`
	Description string `json:"field_description"`
	Type        string `json:"field_type"`
}

// EnumDoc is the documentation entry for an enum. Values are sorted ascending
// by name.
type EnumDoc struct {
	Name        string          `json:"enum_name"`
	Description string          `json:"enum_description"`
	Values      []*EnumValueDoc `json:"enum_values"`
}

// EnumValueDoc is the documentation entry for a single enum value.
type EnumValueDoc struct {
	Name        string `json:"value_name"`
	Number      int32  `json:"value_number"`
	Description string `json:"value_description"`
}
