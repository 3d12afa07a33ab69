package oo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type speaker struct {
	foo string
}

func speak(s *speaker, _ struct{}) string {
	return s.foo
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "0.1.0", Version)
}

func TestExtend(t *testing.T) {
	t.Run("copies own entries", func(t *testing.T) {
		host := map[string]string{"foo": "bar"}
		Extend(host, map[string]string{"baz": "qux"})
		assert.Equal(t, "qux", host["baz"])
		assert.Equal(t, "bar", host["foo"])
	})

	t.Run("overrides existing entries", func(t *testing.T) {
		host := map[string]string{"foo": "bar"}
		Extend(host, map[string]string{"foo": "qux"})
		assert.Equal(t, "qux", host["foo"])
	})

	t.Run("does not modify guest", func(t *testing.T) {
		guest := map[string]int{"a": 1, "b": 2, "c": 3}
		host := Extend(map[string]int{"d": 4}, guest)
		assert.Len(t, guest, 3)
		assert.Len(t, host, 4)
	})

	t.Run("allocates nil host", func(t *testing.T) {
		var host map[string]int
		result := Extend(host, map[string]int{"a": 1})
		assert.Equal(t, map[string]int{"a": 1}, result)
	})

	t.Run("keeps named map type", func(t *testing.T) {
		type attrs map[string]any
		result := Extend(attrs{"a": 1}, attrs{"b": 2})
		assert.IsType(t, attrs{}, result)
	})
}

func TestBind(t *testing.T) {
	t.Run("gives same result", func(t *testing.T) {
		fn := Bind(struct{}{}, func(struct{}, struct{}) string { return "foo" })
		assert.Equal(t, "foo", fn(struct{}{}))
	})

	t.Run("sets context", func(t *testing.T) {
		assert.Equal(t, "foo", Bind(&speaker{foo: "foo"}, speak)(struct{}{}))
		assert.Equal(t, "bar", Bind(&speaker{foo: "bar"}, speak)(struct{}{}))
	})

	t.Run("passes argument along", func(t *testing.T) {
		fn := Bind(struct{}{}, func(_ struct{}, arg string) string { return arg })
		assert.Equal(t, "bar", fn("bar"))
	})
}

func TestBindVariadic(t *testing.T) {
	join := BindVariadic("-", func(sep string, parts ...string) string {
		return strings.Join(parts, sep)
	})
	assert.Equal(t, "a-b-c", join("a", "b", "c"))
	assert.Equal(t, "", join())
}
