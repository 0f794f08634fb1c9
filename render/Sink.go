package render

// Sink consumes the frames of an episode, in order
type Sink interface {
	Show(Frame) error
}

// Func adapts an ordinary function to a Sink
type Func func(Frame) error

// Show calls f(frame)
func (f Func) Show(frame Frame) error {
	return f(frame)
}

// Discard is a Sink that drops every frame
var Discard Sink = Func(func(Frame) error { return nil })

// Multi forwards each frame to every Sink in order, stopping at the
// first error
type Multi []Sink

// Show shows the frame on each Sink
func (m Multi) Show(f Frame) error {
	for _, sink := range m {
		if err := sink.Show(f); err != nil {
			return err
		}
	}
	return nil
}
