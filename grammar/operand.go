package grammar

import (
	"fmt"
	"slices"

	"github.com/wippyai/spirv-tables/errors"
)

// OperandDesc describes one named value of an operand type, such as the
// "Shader" capability or the "Binding" decoration. Operands lists the
// extra operands that follow the value when it is used.
type OperandDesc struct {
	Name         string
	Capabilities CapabilitySet
	Extensions   ExtensionSet
	Operands     []OperandType
	Value        uint32
}

// RequiredCapabilities returns the capabilities of which at least one
// must be declared for the value to be legal.
func (d *OperandDesc) RequiredCapabilities() CapabilitySet {
	return d.Capabilities
}

// RequiredExtensions returns the extensions of which at least one must be
// declared for the value to be legal. An empty set means core.
func (d *OperandDesc) RequiredExtensions() ExtensionSet {
	return d.Extensions
}

// OperandGroup holds every value of one operand type.
type OperandGroup struct {
	byValue map[uint32]int
	byName  map[string]int
	Entries []OperandDesc
	Type    OperandType
}

// Lookup returns the entry with the given value.
func (g *OperandGroup) Lookup(value uint32) (*OperandDesc, bool) {
	i, ok := g.byValue[value]
	if !ok {
		return nil, false
	}
	return &g.Entries[i], true
}

// LookupName returns the entry with the exact, case-sensitive name.
func (g *OperandGroup) LookupName(name string) (*OperandDesc, bool) {
	i, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	return &g.Entries[i], true
}

// OperandTable is an immutable collection of operand groups.
// Descriptors and groups returned by lookups must not be modified.
type OperandTable struct {
	byType map[OperandType]int
	groups []OperandGroup
}

// NewOperandTable validates groups and indexes them by type, value and name.
// The groups are copied; later changes to the input do not affect the table.
func NewOperandTable(groups []OperandGroup) (*OperandTable, error) {
	t := &OperandTable{
		byType: make(map[OperandType]int, len(groups)),
		groups: make([]OperandGroup, len(groups)),
	}

	for gi, in := range groups {
		table := "operand:" + in.Type.String()
		if in.Type.Base() != in.Type {
			return nil, errors.MalformedTable(table, nil,
				fmt.Sprintf("group keyed by wrapped type, want %s", in.Type.Base()))
		}
		if _, seen := t.byType[in.Type]; seen {
			return nil, errors.MalformedTable(table, nil, "operand type has more than one group")
		}

		g := OperandGroup{
			Type:    in.Type,
			Entries: make([]OperandDesc, len(in.Entries)),
		}
		for i, e := range in.Entries {
			e.Operands = slices.Clone(e.Operands)
			g.Entries[i] = e
			if e.Name == "" {
				return nil, errors.MalformedTable(table, []string{fmt.Sprintf("#%d", e.Value)}, "empty name")
			}
			if len(e.Operands) > MaxOperandSlots {
				return nil, errors.MalformedTable(table, []string{e.Name},
					fmt.Sprintf("%d operand slots exceed maximum %d", len(e.Operands), MaxOperandSlots))
			}
		}

		var dup *duplicate
		g.byValue, dup = indexCodes(g.Entries, func(d *OperandDesc) uint32 { return d.Value })
		if dup != nil {
			return nil, errors.DuplicateCode(table, dup.code,
				g.Entries[dup.first].Name, g.Entries[dup.second].Name)
		}
		g.byName = indexNames(g.Entries, func(d *OperandDesc) string { return d.Name })

		t.groups[gi] = g
		t.byType[in.Type] = gi
	}
	return t, nil
}

// Group returns the group for typ, normalising optional and variable types.
func (t *OperandTable) Group(typ OperandType) (*OperandGroup, bool) {
	i, ok := t.byType[typ.Base()]
	if !ok {
		return nil, false
	}
	return &t.groups[i], true
}

// Lookup returns the entry of typ with the given value.
func (t *OperandTable) Lookup(typ OperandType, value uint32) (*OperandDesc, bool) {
	g, ok := t.Group(typ)
	if !ok {
		return nil, false
	}
	return g.Lookup(value)
}

// LookupName returns the entry of typ with the exact, case-sensitive name.
func (t *OperandTable) LookupName(typ OperandType, name string) (*OperandDesc, bool) {
	g, ok := t.Group(typ)
	if !ok {
		return nil, false
	}
	return g.LookupName(name)
}

// Types returns the operand types that have groups, in table order.
func (t *OperandTable) Types() []OperandType {
	out := make([]OperandType, len(t.groups))
	for i := range t.groups {
		out[i] = t.groups[i].Type
	}
	return out
}

// Len returns the number of groups.
func (t *OperandTable) Len() int {
	return len(t.groups)
}
