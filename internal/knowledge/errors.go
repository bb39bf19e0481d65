package knowledge

import "fmt"

// CorruptStateError indicates persisted bytes that do not decode into a
// valid tree. It is never replaced by the seed tree.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("corrupt knowledge base: %v", e.Err)
	}
	return fmt.Sprintf("corrupt knowledge base %s: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

// MalformedTreeError indicates an in-memory node that violates the node
// invariants. Path locates the node, e.g. "root.no.yes".
type MalformedTreeError struct {
	Path   string
	Reason string
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed tree at %s: %s", e.Path, e.Reason)
}
