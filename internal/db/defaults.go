package db

// Catalog values stored when the admin leaves a field empty.
const (
	DefaultMenuUnit = "円〜"
	DefaultMenuLink = "/service"
)

// DetailStyle is how one service detail row is rendered.
type DetailStyle struct {
	LabelColor string `yaml:"labelColor"`
	LabelSize  string `yaml:"labelSize"`
	LabelAlign string `yaml:"labelAlign"`
	ValueColor string `yaml:"valueColor"`
	ValueSize  string `yaml:"valueSize"`
	ValueAlign string `yaml:"valueAlign"`
}

var DefaultDetailStyle = DetailStyle{
	LabelColor: "default",
	LabelSize:  "sm",
	LabelAlign: "left",
	ValueColor: "default",
	ValueSize:  "base",
	ValueAlign: "right",
}

// WithDefaults fills every empty field from DefaultDetailStyle.
func (s DetailStyle) WithDefaults() DetailStyle {
	for _, f := range []struct {
		field *string
		def   string
	}{
		{&s.LabelColor, DefaultDetailStyle.LabelColor},
		{&s.LabelSize, DefaultDetailStyle.LabelSize},
		{&s.LabelAlign, DefaultDetailStyle.LabelAlign},
		{&s.ValueColor, DefaultDetailStyle.ValueColor},
		{&s.ValueSize, DefaultDetailStyle.ValueSize},
		{&s.ValueAlign, DefaultDetailStyle.ValueAlign},
	} {
		if *f.field == "" {
			*f.field = f.def
		}
	}
	return s
}
