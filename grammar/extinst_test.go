package grammar

import (
	"errors"
	"testing"

	spverrors "github.com/wippyai/spirv-tables/errors"
)

func testExtInstSets() []ExtInstSet {
	return []ExtInstSet{
		{Name: "GLSL.std.450", Type: ExtInstTypeGLSLStd450, Entries: []ExtInstDesc{
			{Name: "Round", Code: 1, Operands: []OperandType{OperandId}},
			{Name: "InterpolateAtCentroid", Code: 76,
				Capabilities: Capabilities(CapabilityInterpolationFunction),
				Operands:     []OperandType{OperandId}},
		}},
		{Name: "OpenCL.std", Type: ExtInstTypeOpenCLStd, Entries: []ExtInstDesc{
			{Name: "acos", Code: 0, Operands: []OperandType{OperandId}},
		}},
	}
}

func TestExtInstTableLookup(t *testing.T) {
	table, err := NewExtInstTable(testExtInstSets())
	if err != nil {
		t.Fatalf("NewExtInstTable: %v", err)
	}

	d, ok := table.Lookup("GLSL.std.450", 76)
	if !ok || d.Name != "InterpolateAtCentroid" {
		t.Fatalf("Lookup = %v, %v", d, ok)
	}
	d, ok = table.LookupName("OpenCL.std", "acos")
	if !ok || d.Code != 0 {
		t.Fatalf("LookupName = %v, %v", d, ok)
	}
	if _, ok := table.Lookup("GLSL.std.450", 0); ok {
		t.Error("code 0 is not in GLSL.std.450")
	}
	if _, ok := table.Lookup("glsl.std.450", 1); ok {
		t.Error("set names are case-sensitive")
	}
	if _, ok := table.LookupName("GLSL.std.450", "acos"); ok {
		t.Error("names must not leak across sets")
	}

	s, ok := table.SetByType(ExtInstTypeOpenCLStd)
	if !ok || s.Name != "OpenCL.std" {
		t.Errorf("SetByType = %v, %v", s, ok)
	}
	names := table.Names()
	if len(names) != 2 || names[0] != "GLSL.std.450" {
		t.Errorf("Names = %v", names)
	}
}

func TestExtInstTableMalformed(t *testing.T) {
	tests := []struct {
		name string
		sets []ExtInstSet
	}{
		{"duplicate code", []ExtInstSet{{Name: "S", Entries: []ExtInstDesc{
			{Name: "a", Code: 1}, {Name: "b", Code: 1}}}}},
		{"duplicate set", []ExtInstSet{{Name: "S"}, {Name: "S"}}},
		{"empty set name", []ExtInstSet{{}}},
		{"empty entry name", []ExtInstSet{{Name: "S", Entries: []ExtInstDesc{{Code: 1}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtInstTable(tt.sets)
			var e *spverrors.Error
			if !errors.As(err, &e) || e.Kind != spverrors.KindMalformedTable {
				t.Errorf("error = %v, want malformed_table", err)
			}
		})
	}
}

func TestExtInstTypeFromName(t *testing.T) {
	tests := []struct {
		name string
		want ExtInstType
		ok   bool
	}{
		{"GLSL.std.450", ExtInstTypeGLSLStd450, true},
		{"OpenCL.std", ExtInstTypeOpenCLStd, true},
		{"glsl.std.450", ExtInstTypeNone, false},
		{"", ExtInstTypeNone, false},
	}
	for _, tt := range tests {
		got, ok := ExtInstTypeFromName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExtInstTypeFromName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
	if ExtInstTypeGLSLStd450.String() != "GLSL.std.450" {
		t.Errorf("String = %q", ExtInstTypeGLSLStd450.String())
	}
}
