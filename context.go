package spirvtables

import (
	"fmt"
	"sync/atomic"

	"github.com/wippyai/spirv-tables/diag"
	"github.com/wippyai/spirv-tables/env"
	"github.com/wippyai/spirv-tables/errors"
	"github.com/wippyai/spirv-tables/grammar"
	"github.com/wippyai/spirv-tables/registry"
)

// Context binds the tables of one target environment to a diagnostic
// consumer. The tables cannot be replaced after creation.
type Context struct {
	tables   *grammar.Tables
	consumer atomic.Pointer[diag.Consumer]
	target   env.Target
}

type options struct {
	registry *registry.Registry
	consumer diag.Consumer
}

// Option configures NewContext.
type Option func(*options)

// WithRegistry selects tables from r instead of the default registry.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithConsumer installs c as the initial message consumer.
func WithConsumer(c diag.Consumer) Option {
	return func(o *options) {
		o.consumer = c
	}
}

// NewContext creates a processing context for target. Either every table
// is selected or no context is returned.
func NewContext(target env.Target, opts ...Option) (*Context, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = registry.Default()
	}

	tables, err := o.registry.Tables(target)
	if err != nil {
		return nil, errors.New(errors.PhaseContext, kindOf(err)).
			Value(target).
			Cause(err).
			Detail("create context for %s", target).
			Build()
	}

	c := &Context{target: target, tables: tables}
	c.SetMessageConsumer(o.consumer)
	return c, nil
}

func kindOf(err error) errors.Kind {
	if e, ok := err.(*errors.Error); ok {
		return e.Kind
	}
	return errors.KindInvalidInput
}

// Target returns the environment the context was created for.
func (c *Context) Target() env.Target {
	return c.target
}

// Tables returns the selected table triple.
func (c *Context) Tables() *grammar.Tables {
	return c.tables
}

// Opcodes returns the opcode table.
func (c *Context) Opcodes() *grammar.OpcodeTable {
	return c.tables.Opcodes
}

// Operands returns the operand table.
func (c *Context) Operands() *grammar.OperandTable {
	return c.tables.Operands
}

// ExtInsts returns the extended instruction table.
func (c *Context) ExtInsts() *grammar.ExtInstTable {
	return c.tables.ExtInsts
}

// SetMessageConsumer replaces the consumer. Messages emitted after the
// call returns go to cons. A nil consumer discards messages.
func (c *Context) SetMessageConsumer(cons diag.Consumer) {
	if cons == nil {
		c.consumer.Store(nil)
		return
	}
	c.consumer.Store(&cons)
}

// Emit delivers m to the current consumer, if any.
func (c *Context) Emit(m diag.Message) {
	if p := c.consumer.Load(); p != nil {
		(*p)(m)
	}
}

// Report formats a message and emits it.
func (c *Context) Report(level diag.Level, source string, pos diag.Position, format string, args ...any) {
	p := c.consumer.Load()
	if p == nil {
		return
	}
	(*p)(diag.Message{
		Level:    level,
		Source:   source,
		Position: pos,
		Text:     fmt.Sprintf(format, args...),
	})
}
