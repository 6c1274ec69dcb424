package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseConstruct,
				Kind:   KindMalformedTable,
				Table:  "operand:Decoration",
				Path:   []string{"Binding"},
				Detail: "too many operand slots",
			},
			contains: []string{"[construct]", "malformed_table", "operand:Decoration", "Binding", "too many operand slots"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseSelect,
				Kind:  KindUnsupportedEnvironment,
			},
			contains: []string{"[select]", "unsupported_environment"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseContext,
				Kind:   KindUnsupportedEnvironment,
				Detail: "create context",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[context]", "create context", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseConfig,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := UnsupportedEnvironment("vulkan9.9")

	if !errors.Is(err, ErrUnsupportedEnvironment) {
		t.Error("errors.Is should match sentinel")
	}
	if err.Is(&Error{Phase: PhaseContext, Kind: KindUnsupportedEnvironment}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseSelect, Kind: KindNotFound}) {
		t.Error("Is should not match different kind")
	}

	wrapped := Wrap(PhaseContext, KindUnsupportedEnvironment, err, "create context")
	if !errors.Is(wrapped, ErrUnsupportedEnvironment) {
		t.Error("errors.Is should see through Wrap")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseConstruct, KindMalformedTable).
		Table("opcode").
		Path("OpNop").
		Value(uint32(0)).
		Cause(cause).
		Detail("code %d repeated", 0).
		Build()

	if err.Phase != PhaseConstruct {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseConstruct)
	}
	if err.Kind != KindMalformedTable {
		t.Errorf("Kind = %v, want %v", err.Kind, KindMalformedTable)
	}
	if err.Table != "opcode" {
		t.Errorf("Table = %v, want opcode", err.Table)
	}
	if len(err.Path) != 1 || err.Path[0] != "OpNop" {
		t.Errorf("Path = %v, want [OpNop]", err.Path)
	}
	if err.Value != uint32(0) {
		t.Errorf("Value = %v, want 0", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "code 0 repeated" {
		t.Errorf("Detail = %v, want 'code 0 repeated'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("DuplicateCode", func(t *testing.T) {
		err := DuplicateCode("opcode", 17, "OpCapability", "OpCapability2")
		if err.Kind != KindMalformedTable {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformedTable)
		}
		if err.Value != uint32(17) {
			t.Errorf("Value = %v, want 17", err.Value)
		}
		if !strings.Contains(err.Error(), "OpCapability") {
			t.Errorf("message %q should name the first entry", err.Error())
		}
	})

	t.Run("MalformedTable", func(t *testing.T) {
		err := MalformedTable("extinst:GLSL.std.450", []string{"Round"}, "empty name")
		if err.Phase != PhaseConstruct {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseConstruct)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseLookup, "opcode", "OpTypeVoid")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, "OpTypeVoid") {
			t.Errorf("Detail = %v, should name the key", err.Detail)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		err := ParseFailed("capability", errors.New("bad"))
		if err.Phase != PhaseParse || err.Kind != KindInvalidInput {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseConfig, "empty env")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})
}
