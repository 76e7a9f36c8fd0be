package main

import (
	"fmt"
	"os"

	"github.com/MajesticGoodness/gridpath"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// scenario is the YAML description of a map plus the endpoints to
// search between.
type scenario struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Blocked [][2]int `yaml:"blocked"`
	Start   [2]int   `yaml:"start"`
	End     [2]int   `yaml:"end"`
}

func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scenario file")
	}
	var s scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrap(err, "parsing scenario file")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// validate collects every problem with the scenario instead of stopping
// at the first one.
func (s *scenario) validate() error {
	var result *multierror.Error
	if s.Width <= 0 || s.Height <= 0 {
		result = multierror.Append(result,
			fmt.Errorf("grid dimensions must be positive, got %dx%d", s.Width, s.Height))
		return result.ErrorOrNil()
	}
	inside := func(c [2]int) bool {
		return c[0] >= 0 && c[0] < s.Width && c[1] >= 0 && c[1] < s.Height
	}
	if !inside(s.Start) {
		result = multierror.Append(result,
			fmt.Errorf("start (%d, %d) outside %dx%d grid", s.Start[0], s.Start[1], s.Width, s.Height))
	}
	if !inside(s.End) {
		result = multierror.Append(result,
			fmt.Errorf("end (%d, %d) outside %dx%d grid", s.End[0], s.End[1], s.Width, s.Height))
	}
	for i, cell := range s.Blocked {
		if !inside(cell) {
			result = multierror.Append(result,
				fmt.Errorf("blocked[%d] (%d, %d) outside %dx%d grid", i, cell[0], cell[1], s.Width, s.Height))
			continue
		}
		if cell == s.Start {
			result = multierror.Append(result, fmt.Errorf("start cell (%d, %d) is blocked", cell[0], cell[1]))
		}
		if cell == s.End {
			result = multierror.Append(result, fmt.Errorf("end cell (%d, %d) is blocked", cell[0], cell[1]))
		}
	}
	return result.ErrorOrNil()
}

func (s *scenario) grid() *gridpath.Grid {
	grid := gridpath.NewGrid(s.Width, s.Height)
	for _, cell := range s.Blocked {
		grid.SetWalkableAt(cell[0], cell[1], false)
	}
	return grid
}

func (s *scenario) startPoint() gridpath.Point {
	return gridpath.Point{X: s.Start[0], Y: s.Start[1]}
}

func (s *scenario) endPoint() gridpath.Point {
	return gridpath.Point{X: s.End[0], Y: s.End[1]}
}
