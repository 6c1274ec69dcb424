package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/wippyai/spirv-tables/errors"
	"github.com/wippyai/spirv-tables/grammar"
)

// entry is one row of any table, flattened for display.
type entry struct {
	desc     any
	kind     string
	name     string
	caps     grammar.CapabilitySet
	exts     grammar.ExtensionSet
	operands []grammar.OperandType
	code     uint32
	allowed  bool
}

func opcodeEntry(d *grammar.OpcodeDesc, declared grammar.Declared) entry {
	return entry{
		desc:     d,
		kind:     "opcode",
		name:     d.Name,
		code:     d.Opcode,
		caps:     d.Capabilities,
		operands: d.Operands,
		allowed:  declared.AllowsOpcode(d),
	}
}

func operandEntry(typ grammar.OperandType, d *grammar.OperandDesc, declared grammar.Declared) entry {
	return entry{
		desc:     d,
		kind:     typ.String(),
		name:     d.Name,
		code:     d.Value,
		caps:     d.Capabilities,
		exts:     d.Extensions,
		operands: d.Operands,
		allowed:  declared.AllowsOperand(d),
	}
}

func extInstEntry(set string, d *grammar.ExtInstDesc, declared grammar.Declared) entry {
	return entry{
		desc:     d,
		kind:     set,
		name:     d.Name,
		code:     d.Code,
		caps:     d.Capabilities,
		operands: d.Operands,
		allowed:  declared.AllowsExtInst(d),
	}
}

func opcodeEntries(tables *grammar.Tables, declared grammar.Declared) []entry {
	descs := tables.Opcodes.Entries()
	out := make([]entry, len(descs))
	for i := range descs {
		out[i] = opcodeEntry(&descs[i], declared)
	}
	return out
}

// operandEntries lists the values of typ, or of every group when typ is
// OperandNone.
func operandEntries(tables *grammar.Tables, typ grammar.OperandType, declared grammar.Declared) []entry {
	var out []entry
	for _, t := range tables.Operands.Types() {
		if typ != grammar.OperandNone && t != typ.Base() {
			continue
		}
		g, _ := tables.Operands.Group(t)
		for i := range g.Entries {
			out = append(out, operandEntry(t, &g.Entries[i], declared))
		}
	}
	return out
}

// extInstEntries lists the instructions of set, or of every set when set
// is empty.
func extInstEntries(tables *grammar.Tables, set string, declared grammar.Declared) []entry {
	var out []entry
	for _, name := range tables.ExtInsts.Names() {
		if set != "" && name != set {
			continue
		}
		s, _ := tables.ExtInsts.Set(name)
		for i := range s.Entries {
			out = append(out, extInstEntry(name, &s.Entries[i], declared))
		}
	}
	return out
}

// parseCode accepts decimal or 0x-prefixed numbers.
func parseCode(s string) (uint32, bool) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// findOpcode resolves NAME or CODE.
func findOpcode(tables *grammar.Tables, query string) (*grammar.OpcodeDesc, error) {
	if code, ok := parseCode(query); ok {
		if d, ok := tables.Opcodes.Lookup(code); ok {
			return d, nil
		}
	} else if d, ok := tables.Opcodes.LookupName(query); ok {
		return d, nil
	}
	return nil, errors.NotFound(errors.PhaseLookup, "opcode", query)
}

// splitQuery splits "PREFIX:REST" at the last colon so that prefixes
// such as "GLSL.std.450" stay intact.
func splitQuery(query, what string) (string, string, error) {
	i := strings.LastIndexByte(query, ':')
	if i <= 0 || i == len(query)-1 {
		return "", "", errors.InvalidInput(errors.PhaseParse,
			fmt.Sprintf("%s query %q: expected PREFIX:NAME or PREFIX:CODE", what, query))
	}
	return query[:i], query[i+1:], nil
}

// findOperand resolves TYPE:NAME or TYPE:VALUE.
func findOperand(tables *grammar.Tables, query string) (grammar.OperandType, *grammar.OperandDesc, error) {
	typName, key, err := splitQuery(query, "operand")
	if err != nil {
		return grammar.OperandNone, nil, err
	}
	typ, ok := grammar.OperandTypeFromString(typName)
	if !ok {
		return grammar.OperandNone, nil, errors.NotFound(errors.PhaseLookup, "operand type", typName)
	}
	typ = typ.Base()

	if v, ok := parseCode(key); ok {
		if d, ok := tables.Operands.Lookup(typ, v); ok {
			return typ, d, nil
		}
	} else if d, ok := tables.Operands.LookupName(typ, key); ok {
		return typ, d, nil
	}
	return typ, nil, errors.NotFound(errors.PhaseLookup, typ.String()+" operand", key)
}

// findExtInst resolves SET:NAME or SET:CODE.
func findExtInst(tables *grammar.Tables, query string) (string, *grammar.ExtInstDesc, error) {
	set, key, err := splitQuery(query, "extinst")
	if err != nil {
		return "", nil, err
	}
	s, ok := tables.ExtInsts.Set(set)
	if !ok {
		return set, nil, errors.NotFound(errors.PhaseLookup, "extended instruction set", set)
	}

	if code, ok := parseCode(key); ok {
		if d, ok := s.Lookup(code); ok {
			return set, d, nil
		}
	} else if d, ok := s.LookupName(key); ok {
		return set, d, nil
	}
	return set, nil, errors.NotFound(errors.PhaseLookup, set+" instruction", key)
}

func formatCaps(s grammar.CapabilitySet) string {
	if s.IsEmpty() {
		return "-"
	}
	return grammar.FormatCapabilities(s)
}

func formatExts(s grammar.ExtensionSet) string {
	if s.IsEmpty() {
		return "-"
	}
	return grammar.FormatExtensions(s)
}

func formatOperands(ops []grammar.OperandType) string {
	if len(ops) == 0 {
		return "-"
	}
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return strings.Join(names, ", ")
}

func formatAllowed(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

// writeTable renders entries with tablewriter.
func writeTable(w io.Writer, entries []entry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Name", "Code", "Capabilities", "Extensions", "Allowed"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, e := range entries {
		table.Append([]string{
			e.kind,
			e.name,
			strconv.FormatUint(uint64(e.code), 10),
			formatCaps(e.caps),
			formatExts(e.exts),
			formatAllowed(e.allowed),
		})
	}
	table.Render()
}

// describe prints one entry in detail.
func describe(w io.Writer, e entry) {
	fmt.Fprintf(w, "%s %s\n", e.kind, e.name)
	fmt.Fprintf(w, "  code:         %d (0x%x)\n", e.code, e.code)
	fmt.Fprintf(w, "  operands:     %s\n", formatOperands(e.operands))
	fmt.Fprintf(w, "  capabilities: %s\n", formatCaps(e.caps))
	fmt.Fprintf(w, "  extensions:   %s\n", formatExts(e.exts))
	fmt.Fprintf(w, "  allowed:      %s\n", formatAllowed(e.allowed))
}
