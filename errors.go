package inspectable

import "fmt"

// WrapperNotFoundError means no wrapper is registered under Name.
type WrapperNotFoundError struct {
	Name string
}

func (e WrapperNotFoundError) Error() string {
	return fmt.Sprintf("wrapper not found: %q", e.Name)
}

// ConstructorMismatchError means the wrapper registered under Name cannot
// take a value of type Got.
type ConstructorMismatchError struct {
	Name string
	Want string
	Got  string
}

func (e ConstructorMismatchError) Error() string {
	return fmt.Sprintf("wrapper %q constructor mismatch: want=%s got=%s", e.Name, e.Want, e.Got)
}

// ConstructionError means the wrapper constructor registered under Name
// failed, panicked or returned nothing.
type ConstructionError struct {
	Name string
	Err  error
}

func (e ConstructionError) Error() string {
	return fmt.Sprintf("construct wrapper %q: %v", e.Name, e.Err)
}

func (e ConstructionError) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from a panicking constructor.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
