package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed elysion.yaml
var defaultBundle []byte

// Load decodes a Bundle from YAML and validates it. Unknown fields are
// rejected.
func Load(r io.Reader) (Bundle, error) {
	var bundle Bundle
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&bundle); err != nil {
		if errors.Is(err, io.EOF) {
			return Bundle{}, fmt.Errorf("decoding content: empty document")
		}
		return Bundle{}, fmt.Errorf("decoding content: %w", err)
	}
	if err := bundle.Validate(); err != nil {
		return Bundle{}, fmt.Errorf("validating content: %w", err)
	}
	return bundle, nil
}

// LoadFile loads a Bundle from the YAML file at path.
func LoadFile(path string) (Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("opening content file: %w", err)
	}
	defer f.Close()
	bundle, err := Load(f)
	if err != nil {
		return Bundle{}, fmt.Errorf("%s: %w", path, err)
	}
	return bundle, nil
}

// Default returns the content compiled into the binary.
func Default() (Bundle, error) {
	return Load(bytes.NewReader(defaultBundle))
}
