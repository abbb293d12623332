// SPDX-License-Identifier: MIT

// Package main provides the lvlmat CLI: an exact-arithmetic calculator
// over rational scalars and matrices.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmat/env"
	"github.com/katalvlaran/lvlmat/expr"
	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/katalvlaran/lvlmat/number"
)

var (
	// latexOutput is set by the --latex flag; results render as LaTeX
	// fragments instead of plain text.
	latexOutput bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lvlmat",
	Short: "lvlmat is an exact rational scalar and matrix calculator",
	Long: `lvlmat evaluates arithmetic over exact rationals and rational
matrices: +, -, *, / and ^ with assignment to named variables, plus
row-echelon reduction and inversion with a full LaTeX derivation of
every row operation.`,
	RunE: runRepl,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&latexOutput, "latex", false, "render results as LaTeX fragments")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)
}

var evalCmd = &cobra.Command{
	Use:   "eval <instruction>",
	Short: "Evaluate a single instruction and print the result",
	Long: `Evaluate one instruction ("name = expression" or a bare
expression) against an empty environment and print the stored value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := env.NewEnvironment[number.Rational]()
		id, err := expr.ParseInstruction(args[0], e)
		if err != nil {
			return err
		}
		v, _ := e.Value(id)
		fmt.Printf("%s = %s\n", id, render(v))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lvlmat v0.1.0")
	},
}

// runRepl reads instructions from stdin line by line against one
// shared environment. Lines starting with ':' are shell commands, not
// instructions; see runCommand.
func runRepl(cmd *cobra.Command, args []string) error {
	e := env.NewEnvironment[number.Rational]()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(`lvlmat - type an expression, "name = expression", or :help`)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := runCommand(line, e); quit {
				break
			}
			continue
		}

		id, err := expr.ParseInstruction(line, e)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		v, _ := e.Value(id)
		fmt.Printf("%s = %s\n", id, render(v))
	}
	return scanner.Err()
}

// runCommand handles the ':' shell commands of the REPL. Matrix
// construction and the built-in functions live here because the
// expression grammar covers scalars only; the shell is the layer that
// puts matrices into the environment.
func runCommand(line string, e *env.Environment[number.Rational]) (quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true

	case ":help":
		fmt.Print(`:mat <name> <rows> <cols> <v11> <v12> ...  define a matrix (row-major integers)
:call <fn> <name>                          apply a builtin (transpose, identity, inverse)
:steps <name>                              print the echelon derivation of a matrix
:list                                      list bound identifiers
:quit                                      leave
`)

	case ":mat":
		if err := commandMat(fields[1:], e); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}

	case ":call":
		if err := commandCall(fields[1:], e); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}

	case ":steps":
		if err := commandSteps(fields[1:], e); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}

	case ":list":
		for _, id := range e.Identifiers() {
			v, _ := e.Value(id)
			fmt.Printf("%s = %s\n", id, render(v))
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %s; try :help\n", fields[0])
	}
	return false
}

// commandMat parses ":mat name rows cols v11 v12 ..." and binds the
// matrix.
func commandMat(args []string, e *env.Environment[number.Rational]) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: :mat <name> <rows> <cols> <values...>")
	}
	id, err := env.NewIdentifier(args[0])
	if err != nil {
		return err
	}
	var rows, cols int
	if _, err = fmt.Sscanf(args[1], "%d", &rows); err != nil {
		return fmt.Errorf("rows %q: %w", args[1], err)
	}
	if _, err = fmt.Sscanf(args[2], "%d", &cols); err != nil {
		return fmt.Errorf("cols %q: %w", args[2], err)
	}

	cells := make([]number.Rational, 0, len(args)-3)
	for _, raw := range args[3:] {
		var n int64
		if _, err = fmt.Sscanf(raw, "%d", &n); err != nil {
			return fmt.Errorf("value %q: %w", raw, err)
		}
		cells = append(cells, number.FromInt(n))
	}
	m, err := matrix.FromVector(cells, rows, cols)
	if err != nil {
		return err
	}
	if err = e.Insert(id, env.FromMatrix(m)); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", id, m)
	return nil
}

// commandCall applies a builtin to a bound value and stores the result
// under "$".
func commandCall(args []string, e *env.Environment[number.Rational]) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: :call <fn> <name>")
	}
	fnID, err := env.NewIdentifier(args[0])
	if err != nil {
		return err
	}
	fn, ok := e.Function(fnID)
	if !ok {
		return fmt.Errorf("no builtin named %s", args[0])
	}
	v, err := lookup(args[1], e)
	if err != nil {
		return err
	}
	res, err := fn.Apply(v)
	if err != nil {
		return err
	}
	e.SetResult(res)
	fmt.Printf("$ = %s\n", render(res))
	return nil
}

// commandSteps prints the full echelon derivation of a bound matrix,
// one LaTeX step per line.
func commandSteps(args []string, e *env.Environment[number.Rational]) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: :steps <name>")
	}
	v, err := lookup(args[0], e)
	if err != nil {
		return err
	}
	m, ok := v.AsMatrix()
	if !ok {
		return fmt.Errorf("%s is not a matrix", args[0])
	}
	aftermath, err := m.Echelon()
	if err != nil {
		return err
	}
	for _, step := range aftermath.Steps {
		fmt.Println(step)
	}
	return nil
}

// lookup resolves a REPL argument to a bound value; "$" names the last
// result.
func lookup(name string, e *env.Environment[number.Rational]) (env.Value[number.Rational], error) {
	id := env.Result()
	if name != "$" {
		var err error
		if id, err = env.NewIdentifier(name); err != nil {
			return env.Value[number.Rational]{}, err
		}
	}
	v, ok := e.Value(id)
	if !ok {
		return env.Value[number.Rational]{}, fmt.Errorf("undefined identifier %s", name)
	}
	return v, nil
}

// render honors the --latex flag.
func render(v env.Value[number.Rational]) string {
	if latexOutput {
		return v.LaTeX()
	}
	return v.String()
}
