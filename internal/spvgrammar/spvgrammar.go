// Package spvgrammar holds the built-in SPIR-V grammar as a superset over
// all supported versions and filters it down to the tables of one version.
package spvgrammar

import (
	"github.com/wippyai/spirv-tables/env"
	"github.com/wippyai/spirv-tables/grammar"
)

// Shorthands for the data files.
const (
	id       = grammar.OperandId
	typeID   = grammar.OperandTypeId
	resID    = grammar.OperandResultId
	semID    = grammar.OperandMemorySemanticsId
	scopeID  = grammar.OperandScopeId
	lit      = grammar.OperandLiteralInteger
	str      = grammar.OperandLiteralString
	optID    = grammar.OperandOptionalId
	optLit   = grammar.OperandOptionalLiteralInteger
	optStr   = grammar.OperandOptionalLiteralString
	optMem   = grammar.OperandOptionalMemoryAccess
	optImg   = grammar.OperandOptionalImage
	optAQ    = grammar.OperandOptionalAccessQualifier
	varID    = grammar.OperandVariableId
	varLit   = grammar.OperandVariableLiteralInteger
	varLitID = grammar.OperandVariableLiteralId
	varIDLit = grammar.OperandVariableIdLiteralInteger
)

var (
	v10 = env.V1_0
	v11 = env.V1_1
)

type opcodeEntry struct {
	desc  grammar.OpcodeDesc
	since env.Version
}

// inst is an instruction with neither result type nor result id.
func inst(name string, code uint32, operands ...grammar.OperandType) opcodeEntry {
	return opcodeEntry{
		since: v10,
		desc:  grammar.OpcodeDesc{Name: name, Opcode: code, Operands: operands},
	}
}

// result is an instruction producing a result id without a result type.
func result(name string, code uint32, operands ...grammar.OperandType) opcodeEntry {
	e := inst(name, code, append([]grammar.OperandType{resID}, operands...)...)
	e.desc.HasResult = true
	return e
}

// typed is an instruction producing a typed result.
func typed(name string, code uint32, operands ...grammar.OperandType) opcodeEntry {
	e := inst(name, code, append([]grammar.OperandType{typeID, resID}, operands...)...)
	e.desc.HasResult = true
	e.desc.HasType = true
	return e
}

func (e opcodeEntry) caps(c ...grammar.Capability) opcodeEntry {
	e.desc.Capabilities = grammar.Capabilities(c...)
	return e
}

func (e opcodeEntry) from(v env.Version) opcodeEntry {
	e.since = v
	return e
}

type operandEntry struct {
	desc  grammar.OperandDesc
	since env.Version
}

func value(name string, v uint32, operands ...grammar.OperandType) operandEntry {
	return operandEntry{
		since: v10,
		desc:  grammar.OperandDesc{Name: name, Value: v, Operands: operands},
	}
}

func (e operandEntry) caps(c ...grammar.Capability) operandEntry {
	e.desc.Capabilities = grammar.Capabilities(c...)
	return e
}

func (e operandEntry) exts(x ...grammar.Extension) operandEntry {
	e.desc.Extensions = grammar.Extensions(x...)
	return e
}

func (e operandEntry) from(v env.Version) operandEntry {
	e.since = v
	return e
}

type operandGroup struct {
	entries []operandEntry
	typ     grammar.OperandType
}

type extInstEntry struct {
	desc  grammar.ExtInstDesc
	since env.Version
}

func ext(name string, code uint32, operands ...grammar.OperandType) extInstEntry {
	return extInstEntry{
		since: v10,
		desc:  grammar.ExtInstDesc{Name: name, Code: code, Operands: operands},
	}
}

func (e extInstEntry) caps(c ...grammar.Capability) extInstEntry {
	e.desc.Capabilities = grammar.Capabilities(c...)
	return e
}

type extInstSet struct {
	name    string
	entries []extInstEntry
	typ     grammar.ExtInstType
}

// Build returns the tables visible to modules of version v.
func Build(v env.Version) (*grammar.Tables, error) {
	ops := make([]grammar.OpcodeDesc, 0, len(opcodes))
	for _, e := range opcodes {
		if v.AtLeast(e.since) {
			ops = append(ops, e.desc)
		}
	}
	opTable, err := grammar.NewOpcodeTable(ops)
	if err != nil {
		return nil, err
	}

	groups := make([]grammar.OperandGroup, 0, len(operandGroups))
	for _, g := range operandGroups {
		entries := make([]grammar.OperandDesc, 0, len(g.entries))
		for _, e := range g.entries {
			if v.AtLeast(e.since) {
				entries = append(entries, e.desc)
			}
		}
		groups = append(groups, grammar.OperandGroup{Type: g.typ, Entries: entries})
	}
	operandTable, err := grammar.NewOperandTable(groups)
	if err != nil {
		return nil, err
	}

	sets := make([]grammar.ExtInstSet, 0, len(extInstSets))
	for _, s := range extInstSets {
		entries := make([]grammar.ExtInstDesc, 0, len(s.entries))
		for _, e := range s.entries {
			if v.AtLeast(e.since) {
				entries = append(entries, e.desc)
			}
		}
		sets = append(sets, grammar.ExtInstSet{Name: s.name, Type: s.typ, Entries: entries})
	}
	extTable, err := grammar.NewExtInstTable(sets)
	if err != nil {
		return nil, err
	}

	return &grammar.Tables{
		Opcodes:  opTable,
		Operands: operandTable,
		ExtInsts: extTable,
	}, nil
}
