// Package spirvtables provides the static grammar tables of the SPIR-V
// intermediate language and the processing context that binds them to a
// target environment.
//
// Every tool that reads, writes or checks SPIR-V modules (assemblers,
// disassemblers, validators, optimizers) needs the same facts about each
// instruction: its numeric opcode, its operand layout, and the
// capabilities or extensions that must be declared before it may appear.
// This module owns those facts and selects the variant that applies to a
// given target environment.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	spirvtables/           Root package with the processing Context
//	├── env/               Target environments and SPIR-V versions
//	├── grammar/           Descriptors, immutable tables, gating rules
//	├── enumset/           Fixed-width sets of capabilities and extensions
//	├── registry/          Per-target table selection and caching
//	├── diag/              Diagnostic messages and consumers
//	├── errors/            Structured error types for debugging
//	└── cmd/spvtables/     Command-line table browser
//
// # Quick Start
//
// Create a context and look up instructions:
//
//	ctx, err := spirvtables.NewContext(env.Vulkan1_0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	op, ok := ctx.Opcodes().LookupName("OpTypeMatrix")
//	if ok {
//	    fmt.Println(op.Opcode) // 24
//	}
//
// # Gating
//
// Lookups never check declared capabilities. Strict consumers do so
// explicitly:
//
//	declared := grammar.Declared{}.WithCapabilities(grammar.CapabilityShader)
//	if !declared.AllowsOpcode(op) {
//	    ctx.Report(diag.LevelError, "", diag.Position{}, "%s requires %s",
//	        op.Name, grammar.FormatCapabilities(op.Capabilities))
//	}
//
// # Thread Safety
//
// Tables are immutable once built and safe for concurrent reads. A Context
// may be shared between goroutines; SetMessageConsumer may race with
// reporting and each message observes either the old or the new consumer.
package spirvtables
