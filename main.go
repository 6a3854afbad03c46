package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/jcorbin/goscratch/internal/logio"
)

// tracer traces engine activity, when the trace level is Debug.
func tracer() tracing.Trace {
	return tracing.Select("scratch.engine")
}

// exprFlags collects repeated -e flags.
type exprFlags []string

func (ef *exprFlags) String() string     { return strings.Join(*ef, " ") }
func (ef *exprFlags) Set(s string) error { *ef = append(*ef, s); return nil }

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	var (
		configPath  string
		traceLevel  string
		timeout     time.Duration
		exprs       exprFlags
		noPrelude   bool
		interactive bool
		demo        bool
	)
	flag.StringVar(&configPath, "config", "", "read settings from a TOML file (default "+defaultConfigFile+", if present)")
	flag.StringVar(&traceLevel, "trace", "", "trace level [Debug|Info|Error]")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.Var(&exprs, "e", "run the given source text, may be repeated")
	flag.BoolVar(&noPrelude, "no-prelude", false, "do not load the prelude words")
	flag.BoolVar(&interactive, "i", false, "start a REPL after running any files or -e text")
	flag.BoolVar(&demo, "demo", false, "run the demonstration scripts")
	flag.Parse()

	cfg, err := readConfig(defaultConfigFile, false)
	if configPath != "" {
		cfg, err = readConfig(configPath, true)
	}
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	if traceLevel != "" {
		cfg.Trace.Level = traceLevel
	}
	if noPrelude {
		cfg.Load.Prelude = new(bool)
	}

	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(cfg.Trace.Level))
	if cfg.Path != "" {
		tracer().Infof("read config from %v", cfg.Path)
	}

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := []EngineOption{
		WithOutput(stdout{os.Stdout}),
		WithPrelude(cfg.prelude()),
	}
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		opts = append(opts, WithLogf(tracer().Debugf))
	}
	e := New(opts...)
	defer func() { log.ErrorIf(e.Close()) }()

	var inputs []io.Reader
	for _, name := range append(cfg.Load.Files, flag.Args()...) {
		f, err := os.Open(name)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		inputs = append(inputs, f)
	}
	for i, expr := range exprs {
		inputs = append(inputs, NamedReader(fmt.Sprintf("-e#%v", i+1), strings.NewReader(expr)))
	}

	if demo {
		runDemo(ctx, e, &log)
	}
	if len(inputs) > 0 {
		if err := e.Load(ctx, inputs...); err != nil {
			log.Errorf("%v", err)
			return
		}
	}

	switch {
	case interactive || (len(inputs) == 0 && !demo && readline.DefaultIsTerminal()):
		repl := newREPL(e, cfg.REPL)
		log.ErrorIf(repl.run(ctx))
	case len(inputs) == 0 && !demo:
		if err := e.Load(ctx, NamedReader("<stdin>", os.Stdin)); err != nil {
			log.Errorf("%v", err)
		}
	}
}

// stdout keeps the Engine from closing os.Stdout.
type stdout struct{ io.Writer }

// demoScripts exercise every builtin word; each one prints what it computes.
var demoScripts = []string{
	"1 2 + print",
	"3 4 - print",
	"5 6 * print",
	"7 8 / print",
	"9 sqrt print",
	"10 dup pstack clear",
	"11 drop pstack",
	"12 13 swap pstack clear",
	"14 15 over pstack clear",
	"16 17 18 rot pstack clear",
	"var a 19 a ! a @ print",
	"20 const b b print",
	`" 21" print`,
	"22 /* comment */ print",
	"23 ( comment ) print",
	"24 // comment\n print",
	": c 25 print ; c",
	"true [ 26 . ] iftrue",
	"false [ 26.1 . ] iffalse",
	"false [ 27 . ] iffalse",
	"true [ 27.1 . ] iffalse",
	"true true and [ 28 . ] iftrue",
	"false true and [ 28.1 . ] iftrue",
	"true false or [ 29 . ] iftrue",
	"false false or [ 29.1 . ] iftrue",
	"false not [ 30 . ] iftrue",
	"31 31 < [ 31 . ] iffalse",
	"32 32 <= [ 32 . ] iftrue",
	"33 33 = [ 33 . ] iftrue",
	"34 34 > [ 34 . ] iffalse",
	"35 35 >= [ 35 . ] iftrue",
	"[ 36 . ] 3 times",
	"var d 0 d ! [ d @ 3 < ] [ 37 . d @ 1 + d ! ] while",
	"var e 0 e ! [ e @ 3 >= ?break 38 . e @ 1 + e ! ] loop",
	"var f 0 f ! [ 39 . f @ 1 + f ! f @ 3 < ?continue true ?break ] loop",
	"40 40 % .",
	"pstack",
}

func runDemo(ctx context.Context, e *Engine, log *logio.Logger) {
	for i, script := range demoScripts {
		tracer().Infof("demo[%v] %q", i, script)
		if err := e.RunContext(ctx, script); err != nil {
			log.Errorf("demo[%v] %q: %v", i, script, err)
		}
	}
}
