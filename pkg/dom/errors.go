package dom

import "fmt"

// Structural misuse codes. These identify programmer errors in tree
// construction; they are carried as panic payloads, not returned.
const (
	CodeEmptyTag       = "D001" // element constructed with an empty tag name
	CodeVoidChild      = "D002" // child appended to a void element
	CodeLockedBranch   = "D003" // branch content appended to a locked conditional
	CodeMapperChild    = "D004" // child appended directly to a MapperNode
	CodeOrphanedBranch = "D005" // branch content appended before any condition
)

// StructuralError describes a misuse of the tree-building API: an
// operation that can never be valid regardless of input data, such as
// appending a child to a void element. Builders panic with a
// *StructuralError at the violating call so the mistake surfaces where
// it was made, not at render time.
type StructuralError struct {
	// Code is a stable identifier (e.g. "D002").
	Code string

	// Op is the operation that was misused (e.g. "Element.Append").
	Op string

	// Message is a short description of the misuse.
	Message string

	// Suggestion is a hint on how to fix the call site.
	Suggestion string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("dom: %s: %s: %s", e.Code, e.Op, e.Message)
	}
	return fmt.Sprintf("dom: %s: %s", e.Op, e.Message)
}

// structural builds the panic payload for a misused builder call.
func structural(code, op, message, suggestion string) *StructuralError {
	return &StructuralError{Code: code, Op: op, Message: message, Suggestion: suggestion}
}
