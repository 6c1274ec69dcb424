package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	spirvtables "github.com/wippyai/spirv-tables"
	"github.com/wippyai/spirv-tables/diag"
	"github.com/wippyai/spirv-tables/env"
	"github.com/wippyai/spirv-tables/errors"
	"github.com/wippyai/spirv-tables/grammar"
	"github.com/wippyai/spirv-tables/registry"
)

// request is one invocation after flags and config are merged.
type request struct {
	cfg     config
	list    string
	opcode  string
	operand string
	extInst string
	dump    bool
	targets bool
}

func main() {
	var (
		envName     = flag.String("env", "", "Target environment ("+strings.Join(env.Names(), ", ")+")")
		configFile  = flag.String("config", "", "Path to TOML config file")
		caps        = flag.String("caps", "", "Declared capabilities (Shader,Kernel,...)")
		exts        = flag.String("exts", "", "Declared extensions (SPV_KHR_shader_ballot,...)")
		list        = flag.String("list", "", "List a table: opcodes, operands[:TYPE], extinst[:SET]")
		opcode      = flag.String("opcode", "", "Look up an opcode by NAME or CODE")
		operand     = flag.String("operand", "", "Look up an operand as TYPE:NAME or TYPE:VALUE")
		extInst     = flag.String("extinst", "", "Look up an extended instruction as SET:NAME or SET:CODE")
		dump        = flag.Bool("dump", false, "Dump the raw descriptor of a lookup")
		targets     = flag.Bool("targets", false, "List target environments and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	overrides{
		set:          set,
		env:          *envName,
		capabilities: *caps,
		extensions:   *exts,
		verbose:      *verbose,
	}.apply(&cfg)

	if cfg.Verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = l.Sync() }()
		registry.SetLogger(l)
	}

	if *interactive {
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	req := request{
		cfg:     cfg,
		list:    *list,
		opcode:  *opcode,
		operand: *operand,
		extInst: *extInst,
		dump:    *dump,
		targets: *targets,
	}
	if req.empty() {
		fmt.Fprintln(os.Stderr, "Usage: spvtables [-env name] [-caps A,B] [-exts X,Y] -list opcodes|operands[:TYPE]|extinst[:SET]")
		fmt.Fprintln(os.Stderr, "       spvtables [-env name] -opcode NAME|CODE [-dump]")
		fmt.Fprintln(os.Stderr, "       spvtables [-env name] -operand TYPE:NAME|VALUE")
		fmt.Fprintln(os.Stderr, "       spvtables [-env name] -extinst SET:NAME|CODE")
		fmt.Fprintln(os.Stderr, "       spvtables -targets")
		fmt.Fprintln(os.Stderr, "       spvtables -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(os.Stdout, req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (r request) empty() bool {
	return r.list == "" && r.opcode == "" && r.operand == "" && r.extInst == "" && !r.targets
}

// newContext creates the processing context for cfg. Diagnostics go to
// stderr through zap when verbose is set.
func newContext(cfg config) (*spirvtables.Context, grammar.Declared, error) {
	target, err := cfg.target()
	if err != nil {
		return nil, grammar.Declared{}, err
	}
	declared, err := cfg.declared()
	if err != nil {
		return nil, grammar.Declared{}, err
	}

	var opts []spirvtables.Option
	if cfg.Verbose {
		opts = append(opts, spirvtables.WithConsumer(diag.ZapConsumer(registry.Logger())))
	}
	ctx, err := spirvtables.NewContext(target, opts...)
	if err != nil {
		return nil, grammar.Declared{}, fmt.Errorf("create context: %w", err)
	}
	ctx.Report(diag.LevelDebug, "spvtables", diag.Position{}, "target %s (%s), declared %s %s",
		target, target.Description(),
		grammar.FormatCapabilities(declared.Capabilities),
		grammar.FormatExtensions(declared.Extensions))
	return ctx, declared, nil
}

func run(w io.Writer, req request) error {
	if req.targets {
		for _, t := range env.All() {
			fmt.Fprintf(w, "%-10s %s\n", t, t.Description())
		}
		return nil
	}

	ctx, declared, err := newContext(req.cfg)
	if err != nil {
		return err
	}
	tables := ctx.Tables()

	if req.list != "" {
		entries, err := listEntries(tables, req.list, declared)
		if err != nil {
			return err
		}
		writeTable(w, entries)
		return nil
	}

	var e entry
	switch {
	case req.opcode != "":
		d, err := findOpcode(tables, req.opcode)
		if err != nil {
			return err
		}
		e = opcodeEntry(d, declared)
	case req.operand != "":
		typ, d, err := findOperand(tables, req.operand)
		if err != nil {
			return err
		}
		e = operandEntry(typ, d, declared)
	case req.extInst != "":
		set, d, err := findExtInst(tables, req.extInst)
		if err != nil {
			return err
		}
		e = extInstEntry(set, d, declared)
	default:
		return errors.InvalidInput(errors.PhaseParse, "nothing to look up")
	}

	if !e.allowed {
		ctx.Report(diag.LevelWarning, "spvtables", diag.Position{}, "%s %s is not enabled by the declared capabilities and extensions",
			e.kind, e.name)
	}
	if req.dump {
		spew.Fdump(w, e.desc)
		return nil
	}
	describe(w, e)
	return nil
}

// listEntries resolves a -list argument such as "operands:StorageClass".
func listEntries(tables *grammar.Tables, what string, declared grammar.Declared) ([]entry, error) {
	kind, arg, _ := strings.Cut(what, ":")
	switch kind {
	case "opcodes":
		return opcodeEntries(tables, declared), nil
	case "operands":
		typ := grammar.OperandNone
		if arg != "" {
			var ok bool
			if typ, ok = grammar.OperandTypeFromString(arg); !ok {
				return nil, errors.NotFound(errors.PhaseLookup, "operand type", arg)
			}
		}
		return operandEntries(tables, typ, declared), nil
	case "extinst":
		if arg != "" {
			if _, ok := tables.ExtInsts.Set(arg); !ok {
				return nil, errors.NotFound(errors.PhaseLookup, "extended instruction set", arg)
			}
		}
		return extInstEntries(tables, arg, declared), nil
	}
	return nil, errors.InvalidInput(errors.PhaseParse,
		fmt.Sprintf("unknown table %q (expected opcodes, operands or extinst)", kind))
}
