package combine

import "fmt"

// ReadError records a candidate file that could not be combined. The run
// carries on past it; the file contributes nothing to the output.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
