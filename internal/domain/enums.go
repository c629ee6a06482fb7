package domain

// FieldType is the closed set of input kinds a field can take.
// The type determines which optional attributes are meaningful.
type FieldType string

const (
	FieldLabel   FieldType = "label"
	FieldText    FieldType = "text"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldEnum    FieldType = "enum"
)

// AllFieldTypes lists the field types in the order they are offered
// in the builder's add-field picker.
var AllFieldTypes = []FieldType{
	FieldLabel, FieldText, FieldNumber, FieldBoolean, FieldEnum,
}

// ValidFieldTypes is the canonical set of accepted field type strings.
var ValidFieldTypes = map[FieldType]bool{
	FieldLabel: true, FieldText: true, FieldNumber: true,
	FieldBoolean: true, FieldEnum: true,
}

// Interactive reports whether the field type collects a value.
// Label fields are display-only headings.
func (t FieldType) Interactive() bool {
	return t != FieldLabel
}

// HasPlaceholder reports whether the field type supports hint text.
func (t FieldType) HasPlaceholder() bool {
	return t == FieldText || t == FieldNumber
}

type LabelStyle string

const (
	StyleH1 LabelStyle = "h1"
	StyleH2 LabelStyle = "h2"
	StyleH3 LabelStyle = "h3"
)

// DefaultLabelStyle is applied to new label fields.
const DefaultLabelStyle = StyleH2

// ValidLabelStyles is the canonical set of accepted heading styles.
var ValidLabelStyles = map[LabelStyle]bool{
	StyleH1: true, StyleH2: true, StyleH3: true,
}
