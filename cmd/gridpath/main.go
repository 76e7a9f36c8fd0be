// Command gridpath runs a shortest-path search over a YAML-described
// grid scenario and prints the resulting path as coordinates or as an
// ASCII rendering of the map.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MajesticGoodness/gridpath"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "gridpath",
		Usage: "find a shortest path through a grid scenario",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scenario", Aliases: []string{"s"}, Usage: "YAML scenario `FILE`", Required: true},
			&cli.StringFlag{Name: "diagonal", Value: "never", Usage: "diagonal movement: never, one-obstacle, no-obstacles, always"},
			&cli.StringFlag{Name: "heuristic", Usage: "heuristic: manhattan, euclidean, octile, chebyshev (default depends on diagonal)"},
			&cli.Float64Flag{Name: "weight", Value: 1, Usage: "heuristic weight, >= 1"},
			&cli.Float64Flag{Name: "turn-penalty", Usage: "penalize direction changes by `COST` in (0, 1)"},
			&cli.Float64Flag{Name: "momentum", Usage: "reward sustained direction by `COST`, must be below the turn penalty"},
			&cli.StringSliceFlag{Name: "prefer", Usage: "tie preference `PAIR=DIR`, e.g. up/right=up (repeatable; enables tie-breaking)"},
			&cli.BoolFlag{Name: "ignore-start-ties", Usage: "skip tie resolution at the start node"},
			&cli.StringFlag{Name: "post", Usage: "post-process the path: compress, expand, smooth"},
			&cli.BoolFlag{Name: "ascii", Usage: "render the grid and path instead of listing coordinates"},
			&cli.DurationFlag{Name: "timeout", Usage: "abort the search after `DURATION`"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log search internals to stderr"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	scn, err := loadScenario(c.String("scenario"))
	if err != nil {
		return err
	}
	opts, err := searchOptions(c)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if timeout := c.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	grid := scn.grid()
	started := time.Now()
	result := gridpath.Search(ctx, grid, scn.startPoint(), scn.endPoint(), opts...)
	elapsed := time.Since(started)

	if !result.Found {
		fmt.Fprintf(os.Stderr, "no path found (%d nodes expanded in %s)\n", result.ExpandedNodes, elapsed)
		return nil
	}

	path := result.Path
	switch post := c.String("post"); post {
	case "":
	case "compress":
		path = gridpath.CompressPath(path)
	case "expand":
		path = gridpath.ExpandPath(path)
	case "smooth":
		path = gridpath.SmoothenPath(grid, path)
	default:
		return errors.Errorf("unknown post-processing step %q", post)
	}

	if c.Bool("ascii") {
		fmt.Print(renderASCII(scn, path))
	} else {
		for _, point := range path {
			fmt.Printf("%d,%d\n", point.X, point.Y)
		}
	}
	fmt.Fprintf(os.Stderr, "cost %.3f, %d points, %d nodes expanded, %d iterations, %s\n",
		result.TotalCost, len(path), result.ExpandedNodes, result.Iterations, elapsed)
	return nil
}

func searchOptions(c *cli.Context) ([]gridpath.Option, error) {
	diagonal, err := parseDiagonal(c.String("diagonal"))
	if err != nil {
		return nil, err
	}
	opts := []gridpath.Option{
		gridpath.WithDiagonalMovement(diagonal),
		gridpath.WithWeight(c.Float64("weight")),
	}
	if name := c.String("heuristic"); name != "" {
		heuristic, err := parseHeuristic(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gridpath.WithHeuristic(heuristic))
	}
	if c.IsSet("turn-penalty") {
		opts = append(opts, gridpath.WithAvoidStaircase(c.Float64("turn-penalty")))
	}
	if c.IsSet("momentum") {
		opts = append(opts, gridpath.WithMomentum(c.Float64("momentum")))
	}
	if entries := c.StringSlice("prefer"); len(entries) > 0 {
		preferences, err := parsePreferences(entries)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gridpath.WithTieBreaking(preferences, c.Bool("ignore-start-ties")))
	}
	if c.Bool("verbose") {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
		opts = append(opts, gridpath.WithLogger(logger))
	}
	return opts, nil
}

func parseDiagonal(name string) (gridpath.DiagonalMovement, error) {
	switch name {
	case "never":
		return gridpath.DiagonalNever, nil
	case "one-obstacle":
		return gridpath.DiagonalIfAtMostOneObstacle, nil
	case "no-obstacles":
		return gridpath.DiagonalOnlyWhenNoObstacles, nil
	case "always":
		return gridpath.DiagonalAlways, nil
	default:
		return 0, errors.Errorf("unknown diagonal movement %q", name)
	}
}

func parseHeuristic(name string) (gridpath.Heuristic, error) {
	switch name {
	case "manhattan":
		return gridpath.Manhattan, nil
	case "euclidean":
		return gridpath.Euclidean, nil
	case "octile":
		return gridpath.Octile, nil
	case "chebyshev":
		return gridpath.Chebyshev, nil
	default:
		return nil, errors.Errorf("unknown heuristic %q", name)
	}
}

func parseDirection(name string) (gridpath.Direction, error) {
	switch name {
	case "up":
		return gridpath.Up, nil
	case "right":
		return gridpath.Right, nil
	case "down":
		return gridpath.Down, nil
	case "left":
		return gridpath.Left, nil
	case "none":
		return gridpath.NoPreference, nil
	default:
		return gridpath.NoPreference, errors.Errorf("unknown direction %q", name)
	}
}

// parsePreferences turns entries like "up/right=up" into a preference
// table.
func parsePreferences(entries []string) (gridpath.Preferences, error) {
	preferences := make(gridpath.Preferences, len(entries))
	for _, entry := range entries {
		pair, winner, found := strings.Cut(entry, "=")
		first, second, pairOK := strings.Cut(pair, "/")
		if !found || !pairOK {
			return nil, errors.Errorf("malformed preference %q, want a/b=c", entry)
		}
		firstDir, err := parseDirection(first)
		if err != nil {
			return nil, err
		}
		secondDir, err := parseDirection(second)
		if err != nil {
			return nil, err
		}
		winnerDir, err := parseDirection(winner)
		if err != nil {
			return nil, err
		}
		if firstDir == gridpath.NoPreference || secondDir == gridpath.NoPreference || firstDir == secondDir {
			return nil, errors.Errorf("preference %q must name two distinct directions", entry)
		}
		preferences[gridpath.PairOf(firstDir, secondDir)] = winnerDir
	}
	return preferences, nil
}

func renderASCII(scn *scenario, path gridpath.Path) string {
	cells := make([][]rune, scn.Height)
	for y := range cells {
		cells[y] = make([]rune, scn.Width)
		for x := range cells[y] {
			cells[y][x] = '.'
		}
	}
	for _, cell := range scn.Blocked {
		cells[cell[1]][cell[0]] = '#'
	}
	for _, point := range path {
		cells[point.Y][point.X] = '*'
	}
	cells[scn.Start[1]][scn.Start[0]] = 'S'
	cells[scn.End[1]][scn.End[0]] = 'E'

	var rendered strings.Builder
	for _, row := range cells {
		rendered.WriteString(string(row))
		rendered.WriteByte('\n')
	}
	return rendered.String()
}
