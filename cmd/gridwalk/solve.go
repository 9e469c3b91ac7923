package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

var (
	startColor   = color.New(color.FgHiCyan, color.Bold)
	endColor     = color.New(color.FgYellow, color.Bold)
	wallColor    = color.New(color.FgHiBlue)
	pathColor    = color.New(color.FgGreen, color.Bold)
	visitedColor = color.New(color.FgHiBlack)
)

func newSolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search the board once and print the marked result",
		Example: `  gridwalk solve --map maze.txt --algo dfs
  gridwalk solve --rows 5 --cols 8 --start 0,0 --end 4,7 --wall 1,1 --wall 2,2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd.Context(), cmd.OutOrStdout())
		},
	}
	addBoardFlags(cmd.Flags())
	return cmd
}

// solve prints the board with visited cells and the route marked, then a
// summary line. An unreachable End is reported, not returned as an error.
func (a *app) solve(ctx context.Context, out io.Writer) error {
	g, err := a.cfg.Grid()
	if err != nil {
		return err
	}
	algo, err := a.cfg.SearchAlgorithm()
	if err != nil {
		return err
	}

	res, err := search.Search(g, algo, search.WithContext(ctx), search.WithLogger(a.logger))
	if err != nil {
		return err
	}
	marked, err := res.Mark(g)
	if err != nil {
		return err
	}
	a.logger.Info("solved",
		slog.String("algorithm", algo.String()),
		slog.Int("visited", res.Steps()),
		slog.Bool("found", res.Found()))

	fmt.Fprintln(out, renderBoard(marked))
	fmt.Fprintln(out, summary(res))
	return nil
}

// renderBoard draws g with one coloured ASCII symbol per cell.
func renderBoard(g *grid.Grid) string {
	var b strings.Builder
	for i, c := range g.Cells() {
		if i > 0 && i%g.Cols() == 0 {
			b.WriteByte('\n')
		}
		sym := string(c.Symbol())
		switch c.Symbol() {
		case grid.SymbolStart:
			sym = startColor.Sprint(sym)
		case grid.SymbolEnd:
			sym = endColor.Sprint(sym)
		case grid.SymbolWall:
			sym = wallColor.Sprint(sym)
		case grid.SymbolPath:
			sym = pathColor.Sprint(sym)
		case grid.SymbolVisited:
			sym = visitedColor.Sprint(sym)
		}
		b.WriteString(sym)
	}
	return b.String()
}

// summary reports the discovery count and the route length in edges.
func summary(res *search.Result) string {
	if !res.Found() {
		return fmt.Sprintf("%s: visited=%d no path", res.Algorithm, res.Steps())
	}
	return fmt.Sprintf("%s: visited=%d path=%d", res.Algorithm, res.Steps(), res.PathLength())
}
