package model

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SaveGob writes m to path with encoding/gob, truncating any existing file.
func SaveGob(path string, m *GradientBoostingRegressor) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	if err := gob.NewEncoder(f).Encode(m); err != nil {
		f.Close()
		return fmt.Errorf("encode model %s: %w", path, err)
	}
	return f.Close()
}

// LoadGradientBoosting reads a model written by SaveGob.
func LoadGradientBoosting(path string) (*GradientBoostingRegressor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()

	m := &GradientBoostingRegressor{}
	if err := gob.NewDecoder(f).Decode(m); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}
	return m, nil
}
