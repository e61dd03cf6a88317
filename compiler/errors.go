package compiler

import "fmt"

// InvalidTransitionError is raised by the scanner or the parser when the
// token stream violates the corresponding state machine's transition table.
type InvalidTransitionError struct {
	Stage string
	Msg   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: invalid transition: %s", e.Stage, e.Msg)
}

// UnexpectedSlashError is raised by the scanner when a '/' is encountered
// inside an identifier.
type UnexpectedSlashError struct{}

func (e *UnexpectedSlashError) Error() string {
	return "scanner: unexpected '/' inside identifier"
}

// UnexpectedNumericError is raised by the scanner when a digit appears where
// an identifier could not start.
type UnexpectedNumericError struct{}

func (e *UnexpectedNumericError) Error() string {
	return "scanner: unexpected numeric character"
}

// QuoteFollowedByNonWhitespaceError is raised by the scanner when a closing
// quote is not followed by whitespace or the first character of a symbol.
type QuoteFollowedByNonWhitespaceError struct{}

func (e *QuoteFollowedByNonWhitespaceError) Error() string {
	return "scanner: quote followed by non-whitespace"
}

// UnterminatedStringError is raised by the scanner when a string literal is
// not closed before a newline or the end of input.
type UnterminatedStringError struct{}

func (e *UnterminatedStringError) Error() string {
	return "scanner: unterminated string literal"
}

// SemanticError is raised by the semantic analyzer for any structural
// violation: role-assignment conflicts, missing attributes on a leaf,
// duplicate attributes, duplicate element names, heterogeneous lists, or a
// declaration with a list-valued attribute.
type SemanticError struct {
	Msg string
}

func (e *SemanticError) Error() string {
	return "semantic: " + e.Msg
}

// CyclicDependencyError is raised by the intermediate code generator when a
// dependency cycle is detected between declarations.
type CyclicDependencyError struct{}

func (e *CyclicDependencyError) Error() string {
	return "intergen: cyclic dependency detected"
}

// IOError wraps a failure from the reader or the writer collaborators.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
