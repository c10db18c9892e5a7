package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/notifstack/pkg/errors"
)

// Format is a scenario encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	if err := errors.ValidateFilename(path); err != nil {
		return "", err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON, nil
	}
	return FormatTOML, nil
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "scenario %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	sc, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return sc, nil
}

// Read decodes and validates a scenario. Unknown keys are rejected.
// Read does not close r.
func Read(r io.Reader, format Format) (*Scenario, error) {
	var sc Scenario
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode json")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&sc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, errors.New(errors.ErrCodeInvalidScenario, "unknown keys: %s", strings.Join(keys, ", "))
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown scenario format %q", format)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Parse decodes a scenario held in memory.
func Parse(data []byte, format Format) (*Scenario, error) {
	return Read(bytes.NewReader(data), format)
}

// Write encodes sc in the given format.
func Write(w io.Writer, sc *Scenario, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sc)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(sc)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown scenario format %q", format)
	}
}

// Save writes sc to path, picking the format from the extension.
func Save(path string, sc *Scenario) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(&buf, sc, format); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
