package scene

// Scene is a complete, renderer-independent description of one image.
type Scene struct {
	Width, Height int
	Background    Gradient
	Commands      []Command
}

// Count returns the number of commands tagged with role.
func (s Scene) Count(role Role) int {
	n := 0
	for _, c := range s.Commands {
		if c.Role == role {
			n++
		}
	}
	return n
}

// CountKind returns the number of commands of the given kind.
func (s Scene) CountKind(k Kind) int {
	n := 0
	for _, c := range s.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Recorder collects the commands a pattern emits for one canvas size.
// A Recorder is used by a single generator call and then discarded.
type Recorder struct {
	width, height int
	cmds          []Command
}

// NewRecorder returns an empty recorder for a width x height canvas.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Width returns the canvas width in pixels.
func (r *Recorder) Width() float64 { return float64(r.width) }

// Height returns the canvas height in pixels.
func (r *Recorder) Height() float64 { return float64(r.height) }

// Center returns the middle of the canvas.
func (r *Recorder) Center() Point {
	return Point{X: r.Width() / 2, Y: r.Height() / 2}
}

// Add appends commands in paint order.
func (r *Recorder) Add(cmds ...Command) {
	r.cmds = append(r.cmds, cmds...)
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.cmds) }

// Scene finishes the recording with the given background.
func (r *Recorder) Scene(bg Gradient) Scene {
	cmds := make([]Command, len(r.cmds))
	copy(cmds, r.cmds)
	return Scene{
		Width:      r.width,
		Height:     r.height,
		Background: bg,
		Commands:   cmds,
	}
}
