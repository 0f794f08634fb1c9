// Package trackers implements Trackers, which track and save data in an
// experiment
package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/samuelfneumann/marsrover/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished. Track is called on every timestep of the
// experiment, in order.
type Tracker interface {
	Track(t timestep.TimeStep)
	Save() error
}

// save gob-encodes data to filename
func save(filename string, data []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %w", err)
	}

	en := gob.NewEncoder(file)
	if err = en.Encode(data); err != nil {
		file.Close()
		return fmt.Errorf("save: could not encode data: %w", err)
	}
	return file.Close()
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %w", err)
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data []float64
	if err = dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %w", err)
	}

	return data, nil
}
