// Package registry selects the opcode, operand and extended-instruction
// tables for a target environment.
//
// Tables are built on first use and cached for the life of the registry.
// Cached reads take no lock; concurrent first requests for the same
// target share a single build.
package registry

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/wippyai/spirv-tables/env"
	"github.com/wippyai/spirv-tables/errors"
	"github.com/wippyai/spirv-tables/grammar"
	"github.com/wippyai/spirv-tables/internal/spvgrammar"
)

// Source builds the table triple for a supported target.
type Source func(env.Target) (*grammar.Tables, error)

// Builtin is the Source backed by the built-in SPIR-V grammar.
func Builtin(t env.Target) (*grammar.Tables, error) {
	return spvgrammar.Build(t.Version())
}

// Registry caches table triples per target.
type Registry struct {
	source Source
	cache  sync.Map // env.Target -> *grammar.Tables
	group  singleflight.Group
}

// New creates a registry drawing tables from src.
// A nil src selects Builtin.
func New(src Source) *Registry {
	if src == nil {
		src = Builtin
	}
	return &Registry{source: src}
}

// Tables returns the table triple for t.
func (r *Registry) Tables(t env.Target) (*grammar.Tables, error) {
	if !t.Valid() {
		return nil, errors.UnsupportedEnvironment(uint8(t))
	}
	if v, ok := r.cache.Load(t); ok {
		return v.(*grammar.Tables), nil
	}

	v, err, shared := r.group.Do(t.String(), func() (any, error) {
		if v, ok := r.cache.Load(t); ok {
			return v, nil
		}
		tables, err := r.source(t)
		if err != nil {
			Logger().Debug("table build failed", zap.Stringer("target", t), zap.Error(err))
			return nil, err
		}
		if tables == nil || tables.Opcodes == nil || tables.Operands == nil || tables.ExtInsts == nil {
			return nil, errors.New(errors.PhaseSelect, errors.KindMalformedTable).
				Value(t.String()).
				Detail("source returned an incomplete table triple for %s", t).
				Build()
		}
		actual, _ := r.cache.LoadOrStore(t, tables)
		Logger().Debug("tables built",
			zap.Stringer("target", t),
			zap.Stringer("version", t.Version()),
			zap.Int("opcodes", tables.Opcodes.Len()),
			zap.Int("operand_groups", tables.Operands.Len()),
			zap.Int("ext_inst_sets", tables.ExtInsts.Len()))
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		Logger().Debug("shared table build", zap.Stringer("target", t))
	}
	return v.(*grammar.Tables), nil
}

// OpcodeTable returns the opcode table for t.
func (r *Registry) OpcodeTable(t env.Target) (*grammar.OpcodeTable, error) {
	tables, err := r.Tables(t)
	if err != nil {
		return nil, err
	}
	return tables.Opcodes, nil
}

// OperandTable returns the operand table for t.
func (r *Registry) OperandTable(t env.Target) (*grammar.OperandTable, error) {
	tables, err := r.Tables(t)
	if err != nil {
		return nil, err
	}
	return tables.Operands, nil
}

// ExtInstTable returns the extended instruction table for t.
func (r *Registry) ExtInstTable(t env.Target) (*grammar.ExtInstTable, error) {
	tables, err := r.Tables(t)
	if err != nil {
		return nil, err
	}
	return tables.ExtInsts, nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry backed by Builtin.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New(Builtin)
	})
	return defaultRegistry
}

// Tables returns the table triple for t from the default registry.
func Tables(t env.Target) (*grammar.Tables, error) {
	return Default().Tables(t)
}

// OpcodeTable returns the opcode table for t from the default registry.
func OpcodeTable(t env.Target) (*grammar.OpcodeTable, error) {
	return Default().OpcodeTable(t)
}

// OperandTable returns the operand table for t from the default registry.
func OperandTable(t env.Target) (*grammar.OperandTable, error) {
	return Default().OperandTable(t)
}

// ExtInstTable returns the extended instruction table for t from the
// default registry.
func ExtInstTable(t env.Target) (*grammar.ExtInstTable, error) {
	return Default().ExtInstTable(t)
}
