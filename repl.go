package main

import (
	"context"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

// repl runs one line of input at a time against an Engine; a definition may
// span several lines.
type repl struct {
	e   *Engine
	cfg replConfig
}

func newREPL(e *Engine, cfg replConfig) *repl {
	return &repl{e: e, cfg: cfg}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func (r *repl) run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.cfg.Prompt,
		HistoryFile:     r.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	initDisplay()
	pterm.Info.Println("Welcome to SCRATCH")
	tracer().Infof("Quit with <ctrl>D, .dump shows the engine state")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if !r.command(strings.TrimSpace(line), rl.Stdout()) {
			if err := r.e.RunContext(ctx, line+"\n"); err != nil {
				pterm.Error.Println(err.Error())
			}
		}

		rl.SetPrompt(r.prompt())
	}
}

// prompt continues an open definition with a bar, aligned to the prompt.
func (r *repl) prompt() string {
	if !r.e.Compiling() {
		return r.cfg.Prompt
	}
	n := len(r.cfg.Prompt) - 2
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n) + "| "
}

// command handles the REPL's own dot commands, returning false for lines of
// source text.
func (r *repl) command(line string, out io.Writer) bool {
	switch line {
	case ".dump":
		engineDumper{e: r.e, out: out}.dump()
	case ".builtins":
		engineDumper{e: r.e, out: out, builtins: true}.dumpWords()
	default:
		return false
	}
	return true
}
