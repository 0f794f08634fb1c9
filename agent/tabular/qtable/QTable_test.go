package qtable

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestNewIsZero(t *testing.T) {
	q := New(5, 4)
	for s := 0; s < 5; s++ {
		for a := 0; a < 4; a++ {
			if v := q.Get(s, a); v != 0 {
				t.Errorf("Q[%d, %d] = %v, want 0", s, a, v)
			}
		}
	}
}

func TestBestActionTies(t *testing.T) {
	q := New(2, 4)

	if a := q.BestAction(0); a != 0 {
		t.Errorf("all-zero row: got action %d, want 0", a)
	}

	q.Set(1, 1, 3.5)
	q.Set(1, 3, 3.5)
	if a := q.BestAction(1); a != 1 {
		t.Errorf("tied row: got action %d, want 1", a)
	}
	if v := q.MaxValue(1); v != 3.5 {
		t.Errorf("max value: got %v, want 3.5", v)
	}

	q.Set(0, 0, -2)
	q.Set(0, 1, -1)
	q.Set(0, 2, -1)
	q.Set(0, 3, -5)
	if a := q.BestAction(0); a != 1 {
		t.Errorf("negative row: got action %d, want 1", a)
	}
}

func TestSaveLoad(t *testing.T) {
	q := New(9, 4)
	for s := 0; s < 9; s++ {
		for a := 0; a < 4; a++ {
			q.Set(s, a, math.Pi*float64(s)-1/float64(a+3))
		}
	}

	filename := filepath.Join(t.TempDir(), "q.bin")
	if err := q.Save(filename); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !q.Equal(loaded, 0) {
		t.Errorf("loaded table differs:\n%v\nwant\n%v", loaded, q)
	}

	// Overwriting an existing table replaces it entirely
	q.Set(0, 0, 42)
	if err := q.Save(filename); err != nil {
		t.Fatalf("second save: %v", err)
	}
	loaded, err = Load(filename)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if loaded.Get(0, 0) != 42 {
		t.Errorf("overwritten table: got %v, want 42", loaded.Get(0, 0))
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.bin"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "corrupt.bin")
	if err := os.WriteFile(filename, []byte("not a table"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(filename)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected decoding error, got %v", err)
	}
}

func TestLoadOr(t *testing.T) {
	dir := t.TempDir()
	fallback := New(4, 4)
	fallback.Set(2, 2, 7)

	q, loaded, err := LoadOr(filepath.Join(dir, "missing.bin"), fallback)
	if err != nil || loaded || q != fallback {
		t.Errorf("missing table: got (%p, %v, %v), want fallback", q, loaded,
			err)
	}

	saved := New(4, 4)
	saved.Set(1, 1, 3)
	filename := filepath.Join(dir, "saved.bin")
	if err := saved.Save(filename); err != nil {
		t.Fatal(err)
	}
	q, loaded, err = LoadOr(filename, fallback)
	if err != nil || !loaded || !q.Equal(saved, 0) {
		t.Errorf("saved table: got (%v, %v, %v)", q, loaded, err)
	}

	_, _, err = LoadOr(filename, New(9, 4))
	if !errors.Is(err, ErrShape) {
		t.Errorf("shape mismatch: got %v, want ErrShape", err)
	}
}
