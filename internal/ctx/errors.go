package ctx

import "fmt"

// DuplicateBindingError is raised when an id is inserted twice with
// divergent content (§7 DuplicateBinding). A duplicate insertion with
// identical content is a no-op instead, per spec.md §9 Open Question (b).
type DuplicateBindingError struct {
	ID   string
	Kind string
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("duplicate binding for %s id=%s with conflicting content", e.Kind, e.ID)
}

// danglingRefError is raised by the link phase for an id that a module,
// class, QType, or SourceFile references but that was never inserted.
type danglingRefError struct {
	ID   string
	Kind string
	From string
}

func (e *danglingRefError) Error() string {
	return fmt.Sprintf("%s references unknown %s id=%s", e.From, e.Kind, e.ID)
}

// idInMultipleModulesError is raised by the link phase when one id appears
// in more than one module's id-lists (§3 invariant 4).
type idInMultipleModulesError struct {
	ID      string
	Modules []string
}

func (e *idInMultipleModulesError) Error() string {
	return fmt.Sprintf("id=%s appears in more than one module: %v", e.ID, e.Modules)
}
