package room

import "fmt"

// Registry returns the authored template table in traversal order. The
// returned slice is a copy; the templates themselves are shared and must
// be treated as immutable.
func Registry() []*Template {
	out := make([]*Template, len(registry))
	copy(out, registry)
	return out
}

// Count returns the number of authored templates.
func Count() int {
	return len(registry)
}

// TemplateByID returns the template with the given ID, or nil.
func TemplateByID(id string) *Template {
	for _, t := range registry {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ValidateRegistry checks every authored template's structural
// invariants and that IDs are unique. Content defects surface here,
// at load time, not mid-play. Callers treat an error as fatal.
func ValidateRegistry() error {
	return ValidateTemplates(registry)
}

// ValidateTemplates validates an arbitrary template table, for use with
// external template packs as well as the compiled-in registry.
func ValidateTemplates(templates []*Template) error {
	if len(templates) == 0 {
		return fmt.Errorf("template table is empty")
	}
	seen := make(map[string]bool, len(templates))
	for i, t := range templates {
		if t == nil {
			return fmt.Errorf("template %d is nil", i)
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("template %d: %w", i, err)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate template ID %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}
