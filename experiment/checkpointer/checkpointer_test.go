package checkpointer

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type recorder struct {
	saved []string
	err   error
}

func (r *recorder) Save(filename string) error {
	r.saved = append(r.saved, filename)
	return r.err
}

func TestNEpisode(t *testing.T) {
	obj := &recorder{}
	c, err := NewNEpisode(3, obj, FilenameEnumerator(0, "table", ".bin"))
	if err != nil {
		t.Fatalf("newNEpisode: %v", err)
	}

	for episode := 1; episode <= 7; episode++ {
		if err := c.Checkpoint(episode); err != nil {
			t.Fatalf("checkpoint: %v", err)
		}
	}

	want := "[table1.bin table2.bin]"
	if got := fmt.Sprint(obj.saved); got != want {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestNEpisodeErrors(t *testing.T) {
	if _, err := NewNEpisode(0, &recorder{}, Fixed("x")); err == nil {
		t.Errorf("expected error for non-positive interval")
	}

	saveErr := errors.New("disk full")
	c, _ := NewNEpisode(1, &recorder{err: saveErr}, Fixed("x"))
	if err := c.Checkpoint(1); !errors.Is(err, saveErr) {
		t.Errorf("expected save error to be wrapped, got %v", err)
	}
}

func TestFilenames(t *testing.T) {
	fixed := Fixed("table.bin")
	if fixed() != "table.bin" || fixed() != "table.bin" {
		t.Errorf("fixed filename changed between calls")
	}

	timed := FileTimer("table", ".bin")()
	if !strings.HasPrefix(timed, "table-") || !strings.HasSuffix(timed, ".bin") {
		t.Errorf("unexpected timed filename %v", timed)
	}
}
