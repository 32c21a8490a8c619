// Command sltolua is a thin CLI front-end over lualower: it decodes a
// JSON-encoded program and type table (package slastjson) and either
// prints the translated Lua or just reports whether translation would
// succeed. It exists so the engine has a runnable demonstration; the
// engine itself never reads JSON or touches a filesystem.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/zengjie/TypescriptToLua/lualower"
	"github.com/zengjie/TypescriptToLua/preludelua"
	"github.com/zengjie/TypescriptToLua/slastjson"
)

var version = "v0.1.0"

func main() {
	cmd := &cli.Command{
		Name:    "sltolua",
		Usage:   "Lower a type-checked SL program to Lua 5.x source",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Translate a program and print the resulting Lua",
				ArgsUsage: "<file.json>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-prelude",
						Usage: "Omit the embedded runtime helpers from the output",
					},
				},
				Action: runAction,
			},
			{
				Name:      "check",
				Usage:     "Translate a program without printing it, reporting only success or the first error",
				ArgsUsage: "<file.json>",
				Action:    checkAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, formatErr(err))
		os.Exit(1)
	}
}

func readInput(cmd *cli.Command) ([]byte, error) {
	if cmd.NArg() < 1 || cmd.Args().First() == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(cmd.Args().First())
}

func translate(cmd *cli.Command) (string, error) {
	data, err := readInput(cmd)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	prog, checker, err := slastjson.Decode(data)
	if err != nil {
		return "", err
	}
	return lualower.Transpile(prog, checker, lualower.Options{})
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	out, err := translate(cmd)
	if err != nil {
		return err
	}
	if !cmd.Bool("no-prelude") {
		fmt.Print(preludelua.Source())
	}
	fmt.Print(out)
	return nil
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	_, err := translate(cmd)
	if err != nil {
		return err
	}
	fmt.Println(colorize("ok", 32))
	return nil
}

// formatErr renders a *lualower.TranspileError with its Reason highlighted
// when stderr is a terminal and NO_COLOR isn't set, matching the
// teacher's tty-aware, NO_COLOR-respecting convention.
func formatErr(err error) string {
	te, ok := lualower.AsTranspileError(err)
	if !ok {
		return "error: " + err.Error()
	}
	if !colorEnabled() {
		return "error: " + te.Error()
	}
	return fmt.Sprintf("error: %s: %s", colorize(string(te.Reason), 31), te.Message)
}

func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func colorize(s string, code int) string {
	if !colorEnabled() {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, s)
}
