package grammar

import (
	"fmt"
	"slices"

	"github.com/wippyai/spirv-tables/errors"
)

// MaxOperandSlots bounds the operand signature of any descriptor.
const MaxOperandSlots = 16

// OpcodeDesc describes one instruction.
//
// Operands is positional: when HasType is set slot 0 is the result type id,
// and when HasResult is set the next slot is the result id. The remaining
// slots are the instruction's own operands.
type OpcodeDesc struct {
	Name         string
	Capabilities CapabilitySet
	Operands     []OperandType
	Opcode       uint32
	HasResult    bool
	HasType      bool
}

// RequiredCapabilities returns the capabilities of which at least one
// must be declared for the instruction to be legal.
func (d *OpcodeDesc) RequiredCapabilities() CapabilitySet {
	return d.Capabilities
}

// InstructionOperands returns the operand slots after the result type
// and result id.
func (d *OpcodeDesc) InstructionOperands() []OperandType {
	skip := 0
	if d.HasType {
		skip++
	}
	if d.HasResult {
		skip++
	}
	return d.Operands[skip:]
}

// OpcodeTable is an immutable set of instruction descriptors.
// Descriptors returned by lookups must not be modified.
type OpcodeTable struct {
	byCode  map[uint32]int
	byName  map[string]int
	entries []OpcodeDesc
}

// NewOpcodeTable validates entries and indexes them by code and name.
// The entries are copied; later changes to the input do not affect the table.
func NewOpcodeTable(entries []OpcodeDesc) (*OpcodeTable, error) {
	t := &OpcodeTable{
		entries: make([]OpcodeDesc, len(entries)),
	}
	for i, e := range entries {
		e.Operands = slices.Clone(e.Operands)
		t.entries[i] = e
	}

	for i := range t.entries {
		if err := checkOpcodeShape(&t.entries[i]); err != nil {
			return nil, err
		}
	}

	var dup *duplicate
	t.byCode, dup = indexCodes(t.entries, func(d *OpcodeDesc) uint32 { return d.Opcode })
	if dup != nil {
		return nil, errors.DuplicateCode("opcode", dup.code,
			t.entries[dup.first].Name, t.entries[dup.second].Name)
	}
	t.byName = indexNames(t.entries, func(d *OpcodeDesc) string { return d.Name })
	return t, nil
}

func checkOpcodeShape(d *OpcodeDesc) error {
	if d.Name == "" {
		return errors.MalformedTable("opcode", []string{fmt.Sprintf("#%d", d.Opcode)}, "empty name")
	}
	if len(d.Operands) > MaxOperandSlots {
		return errors.MalformedTable("opcode", []string{d.Name},
			fmt.Sprintf("%d operand slots exceed maximum %d", len(d.Operands), MaxOperandSlots))
	}
	slot := 0
	if d.HasType {
		if len(d.Operands) <= slot || d.Operands[slot] != OperandTypeId {
			return errors.MalformedTable("opcode", []string{d.Name}, "result type flag without leading type id slot")
		}
		slot++
	}
	if d.HasResult {
		if len(d.Operands) <= slot || d.Operands[slot] != OperandResultId {
			return errors.MalformedTable("opcode", []string{d.Name}, "result flag without result id slot")
		}
	}
	return nil
}

// Lookup returns the descriptor with the given opcode.
func (t *OpcodeTable) Lookup(code uint32) (*OpcodeDesc, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return nil, false
	}
	return &t.entries[i], true
}

// LookupName returns the descriptor with the exact, case-sensitive name.
func (t *OpcodeTable) LookupName(name string) (*OpcodeDesc, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return &t.entries[i], true
}

// Len returns the number of descriptors.
func (t *OpcodeTable) Len() int {
	return len(t.entries)
}

// Entries returns the descriptors in table order.
func (t *OpcodeTable) Entries() []OpcodeDesc {
	return slices.Clone(t.entries)
}

type duplicate struct {
	code          uint32
	first, second int
}

// indexCodes maps each code to its first entry in table order and
// reports the first repeated code, if any.
func indexCodes[T any](entries []T, code func(*T) uint32) (map[uint32]int, *duplicate) {
	idx := make(map[uint32]int, len(entries))
	var dup *duplicate
	for i := range entries {
		c := code(&entries[i])
		if first, seen := idx[c]; seen {
			if dup == nil {
				dup = &duplicate{code: c, first: first, second: i}
			}
			continue
		}
		idx[c] = i
	}
	return idx, dup
}

func indexNames[T any](entries []T, name func(*T) string) map[string]int {
	idx := make(map[string]int, len(entries))
	for i := range entries {
		n := name(&entries[i])
		if _, seen := idx[n]; !seen {
			idx[n] = i
		}
	}
	return idx
}
