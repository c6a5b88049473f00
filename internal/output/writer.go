package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteArtifacts writes both artifacts as one logical unit. Each payload
// goes to a temporary file in dir first and the temporaries are renamed into
// place only after every write succeeded, so consumers never observe one
// fresh file next to one stale or missing one.
func WriteArtifacts(dir, jsonName, pineName string, jsonData, pineData []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{jsonName, jsonData},
		{pineName, pineData},
	}

	temps := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range temps {
			os.Remove(tmp)
		}
	}

	for _, f := range files {
		tmp, err := writeTemp(dir, f.name, f.data)
		if err != nil {
			cleanup()
			return err
		}
		temps = append(temps, tmp)
	}

	for i, f := range files {
		if err := os.Rename(temps[i], filepath.Join(dir, f.name)); err != nil {
			cleanup()
			return fmt.Errorf("rename %s into place: %w", f.name, err)
		}
	}

	return nil
}

func writeTemp(dir, name string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp for %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp for %s: %w", name, err)
	}
	return tmp.Name(), nil
}
