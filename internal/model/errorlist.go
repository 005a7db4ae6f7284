package model

// ErrorList accumulates validation messages on a record. Callers inspect it
// before submitting writes. The rules that populate it live with the caller.
type ErrorList struct {
	errs []string
}

func newErrorList() ErrorList {
	return ErrorList{errs: []string{}}
}

// Errors returns the accumulated messages in the order they were added.
// The result is never nil.
func (l *ErrorList) Errors() []string {
	out := make([]string, len(l.errs))
	copy(out, l.errs)
	return out
}

// AddError appends a message.
func (l *ErrorList) AddError(msg string) {
	l.errs = append(l.errs, msg)
}

// ClearErrors empties the list.
func (l *ErrorList) ClearErrors() {
	l.errs = []string{}
}
