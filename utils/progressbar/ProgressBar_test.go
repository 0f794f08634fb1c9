package progressbar

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressBar(&buf, 4, 200)
	p.now = func() time.Time { return p.startTime.Add(3 * time.Second) }

	for i := 0; i < 100; i++ {
		p.Increment()
	}
	if got, want := p.String(), "|██  | [50% | elapsed: 3s]"; got != want {
		t.Errorf("got %q want %q", got, want)
	}

	// The bar is drawn once per percentage point
	if n := strings.Count(buf.String(), "\r"); n != 51 {
		t.Errorf("expected 51 redraws, got %d", n)
	}

	for i := 0; i < 150; i++ {
		p.Increment()
	}
	if !strings.HasSuffix(buf.String(), "[100% | elapsed: 3s]\n") {
		t.Errorf("expected a finished bar followed by a newline, got %q",
			buf.String()[buf.Len()-40:])
	}
}
