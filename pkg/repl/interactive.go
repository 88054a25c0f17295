package repl

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/akhildatla/isa/pkg/isa"
)

// StartInteractive runs the loop on the terminal with line editing, tab
// completion and persistent history. An empty historyFile keeps history in
// memory only.
func (r *REPL) StartInteractive(historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	out := rl.Stdout()
	banner(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if r.Exec(line, out) {
			return nil
		}
	}
}

func completer() *readline.PrefixCompleter {
	mnemonics := readline.PcItemDynamic(func(string) []string {
		ops := isa.Opcodes()
		names := make([]string, len(ops))
		for i, op := range ops {
			names[i] = op.String()
		}
		return names
	})
	shapes := make([]readline.PrefixCompleterInterface, 0, len(isa.Shapes()))
	for _, s := range isa.Shapes() {
		shapes = append(shapes, readline.PcItem(strings.ToLower(s.String())))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("decode"),
		readline.PcItem("encode", mnemonics),
		readline.PcItem("info", mnemonics),
		readline.PcItem("opcodes", shapes...),
		readline.PcItem("load"),
		readline.PcItem("list"),
		readline.PcItem("clear"),
		readline.PcItem("history"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
