package grammar

import (
	"fmt"
	"slices"

	"github.com/wippyai/spirv-tables/errors"
)

// ExtInstType identifies an extended instruction set.
type ExtInstType uint32

const (
	ExtInstTypeNone ExtInstType = iota
	ExtInstTypeGLSLStd450
	ExtInstTypeOpenCLStd
)

var extInstTypeNames = map[ExtInstType]string{
	ExtInstTypeGLSLStd450: "GLSL.std.450",
	ExtInstTypeOpenCLStd:  "OpenCL.std",
}

func (t ExtInstType) String() string {
	if name, ok := extInstTypeNames[t]; ok {
		return name
	}
	if t == ExtInstTypeNone {
		return "none"
	}
	return fmt.Sprintf("ExtInstType(%d)", uint32(t))
}

// ExtInstTypeFromName maps the string operand of OpExtInstImport to a set
// type. Unknown names return ExtInstTypeNone and false.
func ExtInstTypeFromName(name string) (ExtInstType, bool) {
	for t, n := range extInstTypeNames {
		if n == name {
			return t, true
		}
	}
	return ExtInstTypeNone, false
}

// ExtInstDesc describes one instruction of an extended instruction set.
type ExtInstDesc struct {
	Name         string
	Capabilities CapabilitySet
	Operands     []OperandType
	Code         uint32
}

// RequiredCapabilities returns the capabilities of which at least one
// must be declared for the instruction to be legal.
func (d *ExtInstDesc) RequiredCapabilities() CapabilitySet {
	return d.Capabilities
}

// ExtInstSet is one named extended instruction set.
type ExtInstSet struct {
	byCode  map[uint32]int
	byName  map[string]int
	Name    string
	Entries []ExtInstDesc
	Type    ExtInstType
}

// Lookup returns the instruction with the given set-local code.
func (s *ExtInstSet) Lookup(code uint32) (*ExtInstDesc, bool) {
	i, ok := s.byCode[code]
	if !ok {
		return nil, false
	}
	return &s.Entries[i], true
}

// LookupName returns the instruction with the exact, case-sensitive name.
func (s *ExtInstSet) LookupName(name string) (*ExtInstDesc, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return &s.Entries[i], true
}

// ExtInstTable is an immutable collection of extended instruction sets.
type ExtInstTable struct {
	byName map[string]int
	byType map[ExtInstType]int
	sets   []ExtInstSet
}

// NewExtInstTable validates sets and indexes them by name, type and code.
func NewExtInstTable(sets []ExtInstSet) (*ExtInstTable, error) {
	t := &ExtInstTable{
		byName: make(map[string]int, len(sets)),
		byType: make(map[ExtInstType]int, len(sets)),
		sets:   make([]ExtInstSet, len(sets)),
	}

	for si, in := range sets {
		table := "extinst:" + in.Name
		if in.Name == "" {
			return nil, errors.MalformedTable("extinst", []string{fmt.Sprintf("#%d", si)}, "empty set name")
		}
		if _, seen := t.byName[in.Name]; seen {
			return nil, errors.MalformedTable(table, nil, "set name used twice")
		}

		s := ExtInstSet{
			Name:    in.Name,
			Type:    in.Type,
			Entries: make([]ExtInstDesc, len(in.Entries)),
		}
		for i, e := range in.Entries {
			e.Operands = slices.Clone(e.Operands)
			s.Entries[i] = e
			if e.Name == "" {
				return nil, errors.MalformedTable(table, []string{fmt.Sprintf("#%d", e.Code)}, "empty name")
			}
			if len(e.Operands) > MaxOperandSlots {
				return nil, errors.MalformedTable(table, []string{e.Name},
					fmt.Sprintf("%d operand slots exceed maximum %d", len(e.Operands), MaxOperandSlots))
			}
		}

		var dup *duplicate
		s.byCode, dup = indexCodes(s.Entries, func(d *ExtInstDesc) uint32 { return d.Code })
		if dup != nil {
			return nil, errors.DuplicateCode(table, dup.code,
				s.Entries[dup.first].Name, s.Entries[dup.second].Name)
		}
		s.byName = indexNames(s.Entries, func(d *ExtInstDesc) string { return d.Name })

		t.sets[si] = s
		t.byName[in.Name] = si
		if in.Type != ExtInstTypeNone {
			if _, seen := t.byType[in.Type]; !seen {
				t.byType[in.Type] = si
			}
		}
	}
	return t, nil
}

// Set returns the instruction set imported under name, e.g. "GLSL.std.450".
func (t *ExtInstTable) Set(name string) (*ExtInstSet, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return &t.sets[i], true
}

// SetByType returns the instruction set of the given type.
func (t *ExtInstTable) SetByType(typ ExtInstType) (*ExtInstSet, bool) {
	i, ok := t.byType[typ]
	if !ok {
		return nil, false
	}
	return &t.sets[i], true
}

// Lookup returns instruction code of the named set.
func (t *ExtInstTable) Lookup(setName string, code uint32) (*ExtInstDesc, bool) {
	s, ok := t.Set(setName)
	if !ok {
		return nil, false
	}
	return s.Lookup(code)
}

// LookupName returns the instruction called name in the named set.
func (t *ExtInstTable) LookupName(setName, name string) (*ExtInstDesc, bool) {
	s, ok := t.Set(setName)
	if !ok {
		return nil, false
	}
	return s.LookupName(name)
}

// Names returns the set names in table order.
func (t *ExtInstTable) Names() []string {
	out := make([]string, len(t.sets))
	for i := range t.sets {
		out[i] = t.sets[i].Name
	}
	return out
}

// Len returns the number of sets.
func (t *ExtInstTable) Len() int {
	return len(t.sets)
}
