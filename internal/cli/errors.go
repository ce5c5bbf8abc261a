package cli

import "fmt"

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type invalidValueError struct {
	what  string
	value string
	want  string
}

func (e invalidValueError) Error() string {
	return fmt.Sprintf("invalid %s: %q (want %s)", e.what, e.value, e.want)
}
