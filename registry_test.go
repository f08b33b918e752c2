package inspectable

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	ctor := func(v string) (Inspectable, error) { return NewObjectValue(v), nil }

	require.Error(t, Register[string](nil, "values.xValue", ctor))
	reg := NewRegistry()
	require.Error(t, Register[string](reg, "", ctor))
	require.Error(t, Register[string](reg, "values.xValue", nil))

	require.NoError(t, Register[string](reg, "values.xValue", ctor))
	require.Error(t, Register[string](reg, "values.xValue", ctor), "duplicate registration")
	assert.Equal(t, 1, reg.Len())
	assert.Panics(t, func() { MustRegister[string](reg, "values.xValue", ctor) })

	require.Error(t, RegisterFor[string](reg, DefaultNaming(), ArrayOf(StringType), ctor))

	want, ok := reg.ArgumentType("values.xValue")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(""), want)
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	MustRegister(reg, "values.lang.StringValue", func(v string) (Inspectable, error) {
		return NewObjectValue(v + "!"), nil
	})

	factory, ok := reg.Lookup("values.lang.StringValue")
	require.True(t, ok)
	got, err := factory("hi")
	require.NoError(t, err)
	assert.Equal(t, "hi!", got.Value())

	_, err = factory(3)
	var mismatch ConstructorMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "string", mismatch.Want)
	assert.Equal(t, "int", mismatch.Got)

	_, ok = reg.Lookup("values.lang.MissingValue")
	assert.False(t, ok)
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()
	ctor := func(v any) (Inspectable, error) { return NewObjectValue(v), nil }
	for _, name := range []string{
		"values.lang.IntegerValue",
		"values.lang.StringValue",
		"values.net.url.URLValue",
		"plugins.app.WidgetValue",
	} {
		MustRegister[any](reg, name, ctor)
	}

	all, err := reg.Names("")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"plugins.app.WidgetValue",
		"values.lang.IntegerValue",
		"values.lang.StringValue",
		"values.net.url.URLValue",
	}, all)

	lang, err := reg.Names("values.lang.*")
	require.NoError(t, err)
	assert.Equal(t, []string{"values.lang.IntegerValue", "values.lang.StringValue"}, lang)

	deep, err := reg.Names("values.**")
	require.NoError(t, err)
	assert.Len(t, deep, 3)

	one, err := reg.Names("*.*.{Widget,Integer}Value")
	require.NoError(t, err)
	assert.Equal(t, []string{"plugins.app.WidgetValue", "values.lang.IntegerValue"}, one)

	_, err = reg.Names("values.[")
	assert.Error(t, err)
}
