// Package qtable implements a dense table of action values for
// environments with finite state and action spaces
package qtable

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/marsrover/utils/matutils"
)

var (
	// ErrNotFound is returned when loading a table that was never saved
	ErrNotFound = errors.New("no saved table")

	// ErrShape is returned when a loaded table does not have the shape
	// expected by the caller
	ErrShape = errors.New("table shape mismatch")
)

// QTable is a dense (states x actions) matrix of action value
// estimates. Row s holds the values of each action in state s.
type QTable struct {
	values *mat.Dense
}

// New returns a new zero-initialized QTable
func New(states, actions int) *QTable {
	if states < 1 || actions < 1 {
		panic(fmt.Sprintf("new: invalid table shape (%d, %d)", states,
			actions))
	}
	return &QTable{mat.NewDense(states, actions, nil)}
}

// Dims returns the number of states and actions in the table
func (q *QTable) Dims() (states, actions int) {
	return q.values.Dims()
}

// Get returns the value of taking action in state
func (q *QTable) Get(state, action int) float64 {
	return q.values.At(state, action)
}

// Set sets the value of taking action in state
func (q *QTable) Set(state, action int, value float64) {
	q.values.Set(state, action, value)
}

// Row returns the action values of state. The returned vector shares
// its backing data with the table.
func (q *QTable) Row(state int) mat.Vector {
	return q.values.RowView(state)
}

// BestAction returns the action with the largest value in state. Ties
// are broken in favour of the lowest action index.
func (q *QTable) BestAction(state int) int {
	return matutils.MaxVec(q.Row(state))
}

// MaxValue returns the value of the best action in state
func (q *QTable) MaxValue(state int) float64 {
	return q.Get(state, q.BestAction(state))
}

// Clone returns a deep copy of the table
func (q *QTable) Clone() *QTable {
	return &QTable{mat.DenseCopyOf(q.values)}
}

// Equal returns whether q and other have the same shape and every
// entry differs by at most tol
func (q *QTable) Equal(other *QTable, tol float64) bool {
	return mat.EqualApprox(q.values, other.values, tol)
}

// String returns the table formatted as a matrix
func (q *QTable) String() string {
	return matutils.Format(q.values)
}

// Save saves the table to filename. The table is first written to a
// temporary file in the same directory, which then replaces filename,
// so that filename always holds a complete table.
func (q *QTable) Save(filename string) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp*")
	if err != nil {
		return fmt.Errorf("save: could not create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if _, err := q.values.MarshalBinaryTo(w); err != nil {
		tmp.Close()
		return fmt.Errorf("save: could not encode table: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("save: could not write table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save: could not close table file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("save: could not replace %v: %w", filename, err)
	}
	return nil
}

// Load loads a table previously saved with Save. If filename does not
// exist, the returned error wraps ErrNotFound.
func Load(filename string) (*QTable, error) {
	file, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load: %v: %w", filename, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("load: could not open table: %w", err)
	}
	defer file.Close()

	var values mat.Dense
	if _, err := values.UnmarshalBinaryFrom(bufio.NewReader(file)); err != nil {
		return nil, fmt.Errorf("load: could not decode table %v: %w",
			filename, err)
	}

	for _, v := range values.RawMatrix().Data {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("load: table %v holds NaN values", filename)
		}
	}

	return &QTable{&values}, nil
}

// LoadOr loads the table saved at filename. If no table has been saved
// there, fallback is returned and loaded is false. A saved table whose
// shape differs from fallback's is an error wrapping ErrShape.
func LoadOr(filename string, fallback *QTable) (q *QTable, loaded bool,
	err error) {
	q, err = Load(filename)
	if errors.Is(err, ErrNotFound) {
		return fallback, false, nil
	} else if err != nil {
		return nil, false, err
	}

	wantS, wantA := fallback.Dims()
	if s, a := q.Dims(); s != wantS || a != wantA {
		return nil, false, fmt.Errorf("loadOr: (%d, %d) table for (%d, %d) "+
			"environment: %w", s, a, wantS, wantA, ErrShape)
	}
	return q, true, nil
}
