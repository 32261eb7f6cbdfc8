package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Marshal encodes l as indented JSON. Map keys are sorted by encoding/json,
// so equal layouts encode to equal bytes.
func Marshal(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes l as indented JSON to w.
func Write(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON layout from r and runs [Sanitize] on it.
func Read(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("decode: %w", err)
	}
	return Sanitize(l), nil
}

// Unmarshal decodes a JSON layout and runs [Sanitize] on it.
func Unmarshal(data []byte) (Layout, error) {
	return Read(bytes.NewReader(data))
}

// ReadFile reads a JSON layout file.
func ReadFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes l to path as JSON.
func WriteFile(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(l, f)
}
