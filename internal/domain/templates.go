package domain

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	m "qacheck.dev/pkg/qacheck/internal/model"
)

const backendTemplate = `import { describe, it, expect, vi } from 'vitest';
import { {{.Name}} } from './{{.Name}}';

describe('{{.Name}}', () => {
    it('should be defined', () => {
        expect({{.Name}}).toBeDefined();
    });
});
`

// The render call stays commented out: the scaffold must not depend on a
// DOM environment being configured.
const frontendTemplate = `import { describe, it, expect } from 'vitest';
import { render } from '@testing-library/react';
import {{.Name}} from './{{.Name}}';

describe('{{.Name}}', () => {
    it('renders without crashing', () => {
        // render(<{{.Name}} />);
    });
});
`

var scaffoldTemplates = map[m.TemplateKind]*template.Template{
	m.TemplateBackend:  template.Must(template.New(string(m.TemplateBackend)).Parse(backendTemplate)),
	m.TemplateFrontend: template.Must(template.New(string(m.TemplateFrontend)).Parse(frontendTemplate)),
}

// SelectTemplate picks the scaffold body for a source file. The first
// matching rule wins:
//   - "backend" anywhere in the path: backend;
//   - "frontend" anywhere in the path: frontend when the identifier starts
//     with an uppercase letter, backend otherwise;
//   - neither: backend.
func SelectTemplate(sourcePath m.Path, identifier string) m.TemplateKind {
	path := string(sourcePath)

	switch {
	case strings.Contains(path, "backend"):
		return m.TemplateBackend
	case strings.Contains(path, "frontend"):
		if startsUpper(identifier) {
			return m.TemplateFrontend
		}

		return m.TemplateBackend
	default:
		return m.TemplateBackend
	}
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return false
	}

	return unicode.IsUpper(r)
}

// RenderTemplate substitutes identifier into every placeholder of kind.
func RenderTemplate(kind m.TemplateKind, identifier string) ([]byte, error) {
	tmpl, ok := scaffoldTemplates[kind]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", kind)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Name string }{Name: identifier}); err != nil {
		return nil, fmt.Errorf("render %s template: %w", kind, err)
	}

	return buf.Bytes(), nil
}
