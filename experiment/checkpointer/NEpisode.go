package checkpointer

import "fmt"

// nEpisode implements checkpointing every N episodes
type nEpisode struct {
	interval int
	object   Serializable

	// filename returns the name of the file to save the object in.
	//
	// If each checkpoint should be saved in a separate file with an
	// incremented suffix (e.g. table1.bin, table2.bin, ...), use
	// FilenameEnumerator. If the name does not matter, use FileTimer.
	// To overwrite a single file, use Fixed.
	filename func() string
}

// NewNEpisode returns a checkpointer that checkpoints object every n
// episodes
func NewNEpisode(n int, object Serializable,
	filename func() string) (Checkpointer, error) {
	if n < 1 {
		return nil, fmt.Errorf("newNEpisode: interval must be positive, "+
			"got %d", n)
	}

	return &nEpisode{
		interval: n,
		object:   object,
		filename: filename,
	}, nil
}

// Checkpoint saves the tracked object if episode is a multiple of the
// checkpointer's interval
func (n *nEpisode) Checkpoint(episode int) error {
	if episode > 0 && episode%n.interval == 0 {
		if err := n.object.Save(n.filename()); err != nil {
			return fmt.Errorf("checkpoint: episode %d: %w", episode, err)
		}
	}
	return nil
}
