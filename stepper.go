package gridpath

import "context"

// StepSnapshot exposes the per-expansion state of a stepwise search.
type StepSnapshot struct {
	Current   Point
	Open      []Point
	Closed    []Point
	Done      bool
	Found     bool
	Path      Path
	StepIndex int
}

// Stepper drives a single search pass one node expansion at a time, for
// UIs and debugging tools. It applies the same cost shaping and tie
// resolution as Search but does not run the refinement loop: re-running
// passes would make step indices meaningless to a caller replaying the
// expansion order.
//
// The Stepper owns the grid for its lifetime; call Close to release it
// and clear the search bookkeeping it touched.
type Stepper struct {
	ctx    context.Context
	cancel context.CancelFunc
	grid   *Grid
	start  Point
	pass   *passState

	closed    []Point
	current   Point
	path      Path
	stepCount int
	done      bool
	found     bool
}

// NewStepper prepares a stepwise search between the two points.
func NewStepper(parent context.Context, grid *Grid, start, end Point, opts ...Option) *Stepper {
	ctx, cancel := context.WithCancel(parent)
	return &Stepper{
		ctx:    ctx,
		cancel: cancel,
		grid:   grid,
		start:  start,
		pass:   newPassState(grid, start, end, applyOptions(opts)),
	}
}

// Close releases the grid: it cancels the stepper's context and resets
// every node the search touched, start included.
func (s *Stepper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
	dirty := append([]Point{s.start}, s.pass.dirty...)
	s.grid.CleanUp(dirty, Point{X: -1, Y: -1})
}

// Step advances the search by one node expansion and returns a
// snapshot. Once the search is done, further calls return the final
// snapshot unchanged.
func (s *Stepper) Step() StepSnapshot {
	if s.done {
		return s.snapshot()
	}
	if s.pass.open.isEmpty() || s.ctx.Err() != nil {
		s.done = true
		return s.snapshot()
	}

	s.stepCount++
	node := s.pass.open.popMin()
	if node.closed {
		return s.Step()
	}
	node.closed = true
	s.current = Point{X: node.X, Y: node.Y}
	s.closed = append(s.closed, s.current)

	if node == s.pass.endNode {
		s.done = true
		s.found = true
		s.path = Backtrace(s.grid, node)
		return s.snapshot()
	}
	s.pass.expand(node)
	return s.snapshot()
}

func (s *Stepper) snapshot() StepSnapshot {
	open := make([]Point, 0, len(s.pass.open.items))
	for _, node := range s.pass.open.items {
		open = append(open, Point{X: node.X, Y: node.Y})
	}
	closed := make([]Point, len(s.closed))
	copy(closed, s.closed)
	return StepSnapshot{
		Current:   s.current,
		Open:      open,
		Closed:    closed,
		Done:      s.done,
		Found:     s.found,
		Path:      s.path,
		StepIndex: s.stepCount,
	}
}
