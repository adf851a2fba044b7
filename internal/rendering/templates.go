package rendering

// Template describes the visual identity of a generated resume: header and
// accent colors as hex strings without the leading '#', plus the font family.
type Template struct {
	Name           string
	HeaderColor    string
	AccentColor    string
	SecondaryColor string
	FontName       string
	HeaderStyle    string
}

// DefaultTemplate is used when a requested template name is unknown.
const DefaultTemplate = "Classic Professional"

var templates = map[string]Template{
	"Classic Professional": {
		Name:           "Classic Professional",
		HeaderColor:    "2C3E50",
		AccentColor:    "2980B9",
		SecondaryColor: "ECF0F1",
		FontName:       "Arial",
		HeaderStyle:    "traditional",
	},
	"Modern Minimalist": {
		Name:           "Modern Minimalist",
		HeaderColor:    "1A1A2E",
		AccentColor:    "16213E",
		SecondaryColor: "E8F4FD",
		FontName:       "Calibri",
		HeaderStyle:    "modern",
	},
	"Executive Bold": {
		Name:           "Executive Bold",
		HeaderColor:    "1B2631",
		AccentColor:    "C0392B",
		SecondaryColor: "FDFEFE",
		FontName:       "Georgia",
		HeaderStyle:    "executive",
	},
}

// TemplateNames lists the available templates in a stable order.
var TemplateNames = []string{"Classic Professional", "Modern Minimalist", "Executive Bold"}

// LookupTemplate returns the named template, falling back to
// DefaultTemplate for unknown names.
func LookupTemplate(name string) Template {
	if t, ok := templates[name]; ok {
		return t
	}
	return templates[DefaultTemplate]
}
