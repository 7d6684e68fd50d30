package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordfind/internal/engine"
	"github.com/vovakirdan/tui-wordfind/internal/wordsearch"
)

var flagNoSolution bool

var printCmd = &cobra.Command{
	Use:   "print [words...]",
	Short: "Print a puzzle and its solution",
	Long: `Build a puzzle and print it as plain text, followed by the word list
and the solution. Use --seed for a reproducible grid.

Examples:
  wordfind print --pack demo --seed 42
  wordfind print cat dog bird --no-solution`,
	RunE: runPrint,
}

func init() {
	addSourceFlags(printCmd)
	printCmd.Flags().BoolVar(&flagNoSolution, "no-solution", false, "Print only the grid and the words")
}

func runPrint(_ *cobra.Command, args []string) error {
	cfg := appCfg
	if err := applyDifficulty(&cfg, flagDifficulty); err != nil {
		return err
	}

	var src wordSource
	var err error
	if len(args) == 0 && flagList != "" {
		store, openErr := mustOpenStore()
		if openErr != nil {
			return openErr
		}
		defer store.Close()
		src, err = resolveWords(args, flagList, cfg.Pack, store)
	} else {
		src, err = resolveWords(args, "", cfg.Pack, nil)
	}
	if err != nil {
		return err
	}

	opts, err := cfg.Engine.BuildOptions(flagSeed)
	if err != nil {
		return err
	}
	if src.SecretWord != "" {
		opts.SecretWord = src.SecretWord
	}

	res, err := engine.New().Generate(src.Words, opts)
	if err != nil {
		return err
	}
	logger.Debug("puzzle generated", "words", len(res.Placed), "missing", res.Missing)

	width := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			width = w
		}
	}

	printPuzzle(os.Stdout, res, !flagNoSolution, width)
	return nil
}

// printPuzzle writes the grid, the word list and optionally the solution.
// When width leaves room, the solution grid is printed beside the puzzle.
func printPuzzle(w io.Writer, res engine.Result, withSolution bool, width int) {
	puzzle := wordsearch.Render(res.Grid).Text()

	if withSolution {
		solution := wordsearch.Render(solutionGrid(res.Grid, res.Placed)).Text()
		if width > 0 && lipgloss.Width(puzzle)*2+4 <= width {
			fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, puzzle, "    ", solution))
		} else {
			fmt.Fprintln(w, puzzle)
			fmt.Fprintln(w)
			fmt.Fprintln(w, solution)
		}
	} else {
		fmt.Fprintln(w, puzzle)
	}

	words := make([]string, 0, len(res.Placed))
	for _, p := range res.Placed {
		words = append(words, p.Word)
	}
	sort.Strings(words)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Words: %s\n", strings.Join(words, ", "))

	if !withSolution {
		return
	}

	placed := append([]wordsearch.SolutionEntry(nil), res.Placed...)
	sort.Slice(placed, func(i, j int) bool { return placed[i].Word < placed[j].Word })

	maxLen := 4 // "Word" header
	for _, p := range placed {
		maxLen = max(maxLen, len([]rune(p.Word)))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %-3s  %-6s  %s\n", maxLen, "Word", "Row", "Column", "Direction")
	fmt.Fprintf(w, "  %-*s  %-3s  %-6s  %s\n", maxLen, "----", "---", "------", "---------")
	for _, p := range placed {
		start := wordsearch.C(p.X, p.Y)
		fmt.Fprintf(w, "  %-*s  %-3d  %-6d  %s\n",
			maxLen, p.Word, wordsearch.DisplayRow(start), wordsearch.DisplayColumn(start), p.Orientation)
	}

	if len(res.Missing) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Left out: %s\n", strings.Join(res.Missing, ", "))
	}
}

// solutionGrid keeps only the letters of placed words.
func solutionGrid(g wordsearch.Grid, placed []wordsearch.SolutionEntry) wordsearch.Grid {
	out := make(wordsearch.Grid, g.Height())
	for y := range out {
		out[y] = make([]rune, g.Width())
	}
	for _, p := range placed {
		for _, c := range p.Cells() {
			if r, ok := g.Letter(c); ok {
				out[c.Y][c.X] = r
			}
		}
	}
	return out
}
