package grammar

import (
	"errors"
	"testing"

	spverrors "github.com/wippyai/spirv-tables/errors"
)

func testOpcodes() []OpcodeDesc {
	return []OpcodeDesc{
		{Name: "OpNop", Opcode: 0},
		{Name: "OpUndef", Opcode: 1, HasType: true, HasResult: true,
			Operands: []OperandType{OperandTypeId, OperandResultId}},
		{Name: "OpTypeMatrix", Opcode: 24, HasResult: true,
			Capabilities: Capabilities(CapabilityMatrix),
			Operands:     []OperandType{OperandResultId, OperandId, OperandLiteralInteger}},
		{Name: "OpStore", Opcode: 62,
			Operands: []OperandType{OperandId, OperandId, OperandOptionalMemoryAccess}},
	}
}

func TestOpcodeTableLookup(t *testing.T) {
	table, err := NewOpcodeTable(testOpcodes())
	if err != nil {
		t.Fatalf("NewOpcodeTable: %v", err)
	}

	tests := []struct {
		name string
		code uint32
	}{
		{"OpNop", 0},
		{"OpUndef", 1},
		{"OpTypeMatrix", 24},
		{"OpStore", 62},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			byCode, ok := table.Lookup(tt.code)
			if !ok {
				t.Fatalf("Lookup(%d) not found", tt.code)
			}
			if byCode.Name != tt.name {
				t.Errorf("Lookup(%d).Name = %q, want %q", tt.code, byCode.Name, tt.name)
			}
			byName, ok := table.LookupName(tt.name)
			if !ok {
				t.Fatalf("LookupName(%q) not found", tt.name)
			}
			if byName.Opcode != tt.code {
				t.Errorf("LookupName(%q).Opcode = %d, want %d", tt.name, byName.Opcode, tt.code)
			}
		})
	}
}

func TestOpcodeTableNotFound(t *testing.T) {
	table, err := NewOpcodeTable([]OpcodeDesc{{Name: "OpNop", Opcode: 0}})
	if err != nil {
		t.Fatal(err)
	}

	nop, ok := table.Lookup(0)
	if !ok || nop.Name != "OpNop" {
		t.Fatalf("Lookup(0) = %v, %v; want OpNop", nop, ok)
	}
	if _, ok := table.LookupName("OpTypeVoid"); ok {
		t.Error("LookupName should miss OpTypeVoid")
	}
	if _, ok := table.LookupName("opnop"); ok {
		t.Error("name lookup must be case-sensitive")
	}
	if _, ok := table.Lookup(1); ok {
		t.Error("Lookup(1) should miss")
	}
}

func TestOpcodeTableCopiesInput(t *testing.T) {
	in := testOpcodes()
	table, err := NewOpcodeTable(in)
	if err != nil {
		t.Fatal(err)
	}
	in[0].Name = "OpChanged"
	in[2].Operands[2] = OperandNone

	if d, _ := table.Lookup(0); d.Name != "OpNop" {
		t.Errorf("table saw caller mutation of name: %q", d.Name)
	}
	if d, _ := table.Lookup(24); d.Operands[2] != OperandLiteralInteger {
		t.Errorf("table saw caller mutation of operands: %v", d.Operands)
	}
}

func TestOpcodeTableMalformed(t *testing.T) {
	tooMany := make([]OperandType, MaxOperandSlots+1)
	for i := range tooMany {
		tooMany[i] = OperandId
	}

	tests := []struct {
		name    string
		entries []OpcodeDesc
	}{
		{"duplicate code", []OpcodeDesc{{Name: "OpNop", Opcode: 0}, {Name: "OpNop2", Opcode: 0}}},
		{"empty name", []OpcodeDesc{{Opcode: 3}}},
		{"too many slots", []OpcodeDesc{{Name: "OpWide", Opcode: 9, Operands: tooMany}}},
		{"type flag without slot", []OpcodeDesc{{Name: "OpBad", Opcode: 1, HasType: true,
			Operands: []OperandType{OperandResultId}}}},
		{"result flag without slot", []OpcodeDesc{{Name: "OpBad", Opcode: 1, HasType: true, HasResult: true,
			Operands: []OperandType{OperandTypeId}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewOpcodeTable(tt.entries)
			if err == nil {
				t.Fatal("expected malformed table error")
			}
			if table != nil {
				t.Error("no table should be produced on error")
			}
			if !errors.Is(err, &spverrors.Error{Phase: spverrors.PhaseConstruct, Kind: spverrors.KindMalformedTable}) {
				t.Errorf("error = %v, want malformed_table", err)
			}
		})
	}
}

func TestIndexCodesFirstWins(t *testing.T) {
	entries := []OpcodeDesc{
		{Name: "OpFirst", Opcode: 7},
		{Name: "OpOther", Opcode: 8},
		{Name: "OpSecond", Opcode: 7},
	}
	idx, dup := indexCodes(entries, func(d *OpcodeDesc) uint32 { return d.Opcode })
	if dup == nil {
		t.Fatal("duplicate not reported")
	}
	if dup.code != 7 || dup.first != 0 || dup.second != 2 {
		t.Errorf("dup = %+v, want code 7 first 0 second 2", *dup)
	}
	if entries[idx[7]].Name != "OpFirst" {
		t.Errorf("index points at %q, want OpFirst", entries[idx[7]].Name)
	}
}

func TestInstructionOperands(t *testing.T) {
	table, err := NewOpcodeTable(testOpcodes())
	if err != nil {
		t.Fatal(err)
	}

	undef, _ := table.LookupName("OpUndef")
	if got := undef.InstructionOperands(); len(got) != 0 {
		t.Errorf("OpUndef operands = %v, want none", got)
	}
	matrix, _ := table.LookupName("OpTypeMatrix")
	got := matrix.InstructionOperands()
	if len(got) != 2 || got[0] != OperandId || got[1] != OperandLiteralInteger {
		t.Errorf("OpTypeMatrix operands = %v", got)
	}
	store, _ := table.LookupName("OpStore")
	if got := store.InstructionOperands(); len(got) != 3 {
		t.Errorf("OpStore operands = %v, want 3", got)
	}
}
