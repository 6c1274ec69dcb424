package registry

import (
	stderrors "errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/spirv-tables/env"
	"github.com/wippyai/spirv-tables/errors"
	"github.com/wippyai/spirv-tables/grammar"
)

func TestEveryTargetSelects(t *testing.T) {
	r := New(nil)
	for _, target := range env.All() {
		t.Run(target.String(), func(t *testing.T) {
			tables, err := r.Tables(target)
			if err != nil {
				t.Fatalf("Tables: %v", err)
			}
			if tables.Opcodes == nil || tables.Operands == nil || tables.ExtInsts == nil {
				t.Fatal("incomplete triple")
			}

			seen := make(map[uint32]string)
			for _, d := range tables.Opcodes.Entries() {
				if prev, ok := seen[d.Opcode]; ok {
					t.Errorf("opcode %d used by %s and %s", d.Opcode, prev, d.Name)
				}
				seen[d.Opcode] = d.Name
				if len(d.Operands) > grammar.MaxOperandSlots {
					t.Errorf("%s has %d operand slots", d.Name, len(d.Operands))
				}
			}
		})
	}
}

func TestUnsupportedTarget(t *testing.T) {
	r := New(nil)
	bad := env.Target(200)

	if _, err := r.Tables(bad); !stderrors.Is(err, errors.ErrUnsupportedEnvironment) {
		t.Errorf("Tables error = %v", err)
	}
	if tbl, err := r.OpcodeTable(bad); tbl != nil || err == nil {
		t.Error("OpcodeTable returned a table for an unsupported target")
	}
	if tbl, err := r.OperandTable(bad); tbl != nil || err == nil {
		t.Error("OperandTable returned a table for an unsupported target")
	}
	if tbl, err := r.ExtInstTable(bad); tbl != nil || err == nil {
		t.Error("ExtInstTable returned a table for an unsupported target")
	}
}

func TestVersionConditionalContent(t *testing.T) {
	vk, err := OpcodeTable(env.Vulkan1_0)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := vk.LookupName("OpSizeOf"); ok {
		t.Error("OpSizeOf visible under vulkan1.0")
	}

	spv11, err := OpcodeTable(env.Universal1_1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := spv11.LookupName("OpSizeOf"); !ok {
		t.Error("OpSizeOf missing under spv1.1")
	}
}

func TestCachedTablesAreShared(t *testing.T) {
	var builds atomic.Int32
	r := New(func(target env.Target) (*grammar.Tables, error) {
		builds.Add(1)
		return Builtin(target)
	})

	first, err := r.Tables(env.Universal1_0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Tables(env.Universal1_0)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("repeated selection rebuilt the tables")
	}
	if n := builds.Load(); n != 1 {
		t.Errorf("source called %d times, want 1", n)
	}
}

func TestConcurrentSelection(t *testing.T) {
	var builds atomic.Int32
	r := New(func(target env.Target) (*grammar.Tables, error) {
		builds.Add(1)
		return Builtin(target)
	})

	const workers = 16
	results := make([]*grammar.Tables, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			tables, err := r.Tables(env.OpenCL2_1)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = tables
		}()
	}
	wg.Wait()

	for i, tables := range results {
		if tables != results[0] {
			t.Errorf("worker %d observed a different triple", i)
		}
	}
	if n := builds.Load(); n != 1 {
		t.Errorf("source called %d times, want 1", n)
	}
}

func TestContentEqualAcrossRegistries(t *testing.T) {
	a, err := New(nil).Tables(env.OpenGL4_5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(nil).Tables(env.OpenGL4_5)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("separate registries share a triple")
	}

	if diff := cmp.Diff(a.Opcodes.Entries(), b.Opcodes.Entries()); diff != "" {
		t.Errorf("opcode tables differ (-a +b):\n%s", diff)
	}
	for _, typ := range a.Operands.Types() {
		ga, _ := a.Operands.Group(typ)
		gb, ok := b.Operands.Group(typ)
		if !ok {
			t.Errorf("group %s missing", typ)
			continue
		}
		if diff := cmp.Diff(ga.Entries, gb.Entries); diff != "" {
			t.Errorf("group %s differs (-a +b):\n%s", typ, diff)
		}
	}
	if diff := cmp.Diff(a.ExtInsts.Names(), b.ExtInsts.Names()); diff != "" {
		t.Errorf("ext inst sets differ:\n%s", diff)
	}
}

func TestMalformedTableNotCached(t *testing.T) {
	var calls atomic.Int32
	r := New(func(env.Target) (*grammar.Tables, error) {
		calls.Add(1)
		_, err := grammar.NewOpcodeTable([]grammar.OpcodeDesc{
			{Name: "OpNop", Opcode: 0},
			{Name: "OpAlsoNop", Opcode: 0},
		})
		return nil, err
	})

	for n := 0; n < 2; n++ {
		_, err := r.Tables(env.Universal1_0)
		var e *errors.Error
		if !stderrors.As(err, &e) || e.Kind != errors.KindMalformedTable {
			t.Fatalf("error = %v, want malformed table", err)
		}
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("source called %d times, want 2", n)
	}
}

func TestIncompleteSource(t *testing.T) {
	r := New(func(env.Target) (*grammar.Tables, error) {
		return &grammar.Tables{}, nil
	})
	_, err := r.Tables(env.Universal1_0)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindMalformedTable {
		t.Errorf("error = %v, want malformed table", err)
	}
}

func TestDebugLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	if _, err := New(nil).Tables(env.Universal1_1); err != nil {
		t.Fatal(err)
	}
	built := logs.FilterMessage("tables built").All()
	if len(built) != 1 {
		t.Fatalf("got %d build records", len(built))
	}
	if got := built[0].ContextMap()["target"]; got != "spv1.1" {
		t.Errorf("target field = %v", got)
	}
}
