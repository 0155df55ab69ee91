package domain

// EntityNameFormats holds every case variant of an entity name used by the
// templates. All fields derive from a single kebab-case name.
type EntityNameFormats struct {
	KebabCase        string `json:"kebab_case"`
	CamelCase        string `json:"camel_case"`
	PascalCase       string `json:"pascal_case"`
	PluralKebabCase  string `json:"plural_kebab_case"`
	PluralCamelCase  string `json:"plural_camel_case"`
	PluralPascalCase string `json:"plural_pascal_case"`
}

// TemplateData is the context handed to every entity template.
type TemplateData struct {
	Entity EntityNameFormats
}

// ProjectData is the context handed to the init templates.
type ProjectData struct {
	Name       string
	SourceRoot string
	Version    string
}
