package model

// TemplateKind identifies one of the fixed test scaffold bodies.
type TemplateKind string

const (
	// TemplateBackend imports a named export and asserts it is defined.
	TemplateBackend TemplateKind = "backend"
	// TemplateFrontend imports a default-exported component with an inert render test.
	TemplateFrontend TemplateKind = "frontend"
)

// Scaffold describes a test file about to be generated.
type Scaffold struct {
	Source      Path
	Destination Path
	Identifier  string
	Template    TemplateKind
}
