package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krew-solutions/ascetic-oo-go/asceticoo/oo"
)

type Parent struct {
	Foo string
}

func (p *Parent) GetFoo() string {
	return p.Foo
}

type Module struct {
	Bar string
}

func (m Module) GetBar() string {
	return m.Bar
}

// Child decorates Parent.GetFoo and mixes in Module.
type Child struct {
	*Parent
	Module
}

func NewChild(foo, bar string) *Child {
	return &Child{Parent: &Parent{Foo: foo}, Module: Module{Bar: bar}}
}

func (c *Child) GetFoo() string {
	return c.Parent.GetFoo() + "!"
}

func inheritDemo() (expected, actual []string) {
	c := NewChild("a", "b")
	// The bound function ignores the Parent it is called with.
	getFoo := oo.Bind(c, func(c *Child, _ *Parent) string { return c.GetFoo() })
	expected = []string{"a", "b", "a!", "a!", "b"}
	actual = []string{c.Foo, c.Bar, c.GetFoo(), getFoo(&Parent{Foo: "c"}), c.GetBar()}
	return expected, actual
}

func newInheritCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inherit",
		Short: "Decorate an embedded parent and mix in a module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expected, actual := inheritDemo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "expected: %v\n", expected)
			fmt.Fprintf(out, "actual:   %v\n", actual)
			return nil
		},
	}
}
