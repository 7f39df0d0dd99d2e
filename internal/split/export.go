package split

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// File names written by WriteDir.
const (
	TrainFile      = "train.csv"
	ValidationFile = "val.csv"
	TestFile       = "test.csv"
)

// WriteCSV writes examples with columns X (text) and y (1 or 0).
func WriteCSV(path string, examples []Example) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(file)
	if err := w.Write([]string{"X", "y"}); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, ex := range examples {
		label := "0"
		if ex.Label {
			label = "1"
		}
		if err := w.Write([]string{ex.Text, label}); err != nil {
			file.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

// WriteDir writes the three partitions into dir, creating it if needed.
func WriteDir(dir string, p Partition) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	sets := []struct {
		name     string
		examples []Example
	}{
		{TrainFile, p.Train},
		{ValidationFile, p.Validation},
		{TestFile, p.Test},
	}
	for _, set := range sets {
		if err := WriteCSV(filepath.Join(dir, set.name), set.examples); err != nil {
			return err
		}
	}
	return nil
}
