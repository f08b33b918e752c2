package inspectable

import "fmt"

const (
	DefaultNamespace = "values"
	DefaultSuffix    = "Value"
)

// Naming is the convention that turns a type into the identifier its
// specialized wrapper is registered under:
//
//	<Namespace>.<fully qualified boxed type name><Suffix>
//
// With the defaults, int resolves to "values.lang.IntegerValue".
type Naming struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Suffix    string `json:"suffix" yaml:"suffix"`
}

// DefaultNaming returns the naming used when none is configured.
func DefaultNaming() Naming {
	return Naming{Namespace: DefaultNamespace, Suffix: DefaultSuffix}
}

// WrapperName returns the identifier for t. Arrays and invalid types have none.
func (n Naming) WrapperName(t Type) (string, bool) {
	if t.IsZero() || t.IsArray() {
		return "", false
	}
	return n.Namespace + "." + Boxed(t).Name() + n.Suffix, true
}

func (n Naming) validate() error {
	if n.Namespace == "" {
		return fmt.Errorf("naming: namespace is empty")
	}
	return nil
}
