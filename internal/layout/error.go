package layout

import "fmt"

// CacheErrorKind enumerates the ways a Cache lookup can fail before it ever
// reaches the provider.
type CacheErrorKind uint8

const (
	CacheErrNilDecl CacheErrorKind = iota + 1
	CacheErrNoUSR
)

// CacheError is returned when a lookup key cannot be formed for a
// declaration, distinct from a ProviderError the underlying provider call
// itself might return.
type CacheError struct {
	Kind     CacheErrorKind
	Spelling string
}

func (e *CacheError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case CacheErrNilDecl:
		return "layout cache: nil declaration"
	case CacheErrNoUSR:
		return fmt.Sprintf("layout cache: declaration %s has no assignable USR", e.Spelling)
	default:
		return fmt.Sprintf("layout cache: error kind=%d", e.Kind)
	}
}
