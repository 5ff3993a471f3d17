// Package extract implements the type extractor (§4.B), the
// template-argument extractor (§4.C), and the per-declaration extractors
// (§4.D) against the internal/cxxast provider contract.
package extract

import "fmt"

// MissingTypeBindingError is raised when a QType refers to a C++ type the
// caller has not (yet) bound; ExtractQType raises it only when given a
// non-nil KnownIDs. A caller can distinguish it from any other extraction
// failure via errors.As — the "result-type with two error variants" design
// note in spec.md §9 realized as a dedicated Go error type.
type MissingTypeBindingError struct {
	Spelling string
	ID       string
}

func (e *MissingTypeBindingError) Error() string {
	return fmt.Sprintf("missing type binding: %s (id=%s)", e.Spelling, e.ID)
}

// UnsupportedTypeError is raised for a QType shape this system refuses:
// member pointers, function types used by value, variable-length arrays,
// or a dependent type that survived template instantiation (§4.B, §7).
type UnsupportedTypeError struct {
	Spelling string
	Reason   string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %s: %s", e.Spelling, e.Reason)
}
