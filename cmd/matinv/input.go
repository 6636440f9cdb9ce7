// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/matinv/matrix"
)

// Matrix file encodings understood by the front-end.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// stdinPath selects standard input as the matrix source.
const stdinPath = "-"

// matrixDocument is the structured (YAML/JSON) matrix layout:
//
//	rows:
//	- [4, 7]
//	- [2, 6]
type matrixDocument struct {
	Rows [][]float64 `json:"rows"`
}

// detectFormat picks an encoding from an explicit flag value or, when empty,
// from the file extension. Unknown extensions and stdin default to text.
func detectFormat(explicit, path string) (string, error) {
	if explicit != "" {
		switch f := strings.ToLower(explicit); f {
		case formatText, formatYAML, formatJSON:
			return f, nil
		default:
			return "", fmt.Errorf("unsupported format %q (want text, yaml or json)", explicit)
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json":
		return formatJSON, nil
	default:
		return formatText, nil
	}
}

// readMatrix decodes a matrix from r in the given format.
func readMatrix(r io.Reader, format string) (*matrix.Dense, error) {
	if format == formatText {
		return matrix.Parse(r)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc matrixDocument
	// sigs.k8s.io/yaml accepts JSON as a YAML subset.
	if err := yaml.UnmarshalStrict(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s matrix: %w", format, err)
	}

	return matrix.NewFromRows(doc.Rows)
}

// loadMatrix opens path (or stdin for "-") and decodes it.
func loadMatrix(in io.Reader, path, format string) (*matrix.Dense, error) {
	f, err := detectFormat(format, path)
	if err != nil {
		return nil, err
	}
	if path == stdinPath {
		return readMatrix(in, f)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m, err := readMatrix(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// writeMatrix encodes m into w in the given format. Text output uses the
// display precision; structured output keeps full precision.
func writeMatrix(w io.Writer, m *matrix.Dense, format string) error {
	switch format {
	case formatText:
		_, err := io.WriteString(w, matrix.FormatDisplay(m))
		return err
	case formatYAML:
		out, err := yaml.Marshal(matrixDocument{Rows: m.RowsCopy()})
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(matrixDocument{Rows: m.RowsCopy()})
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// newRand returns a reproducible source for seed != 0 and nil (time-seeded
// inside matrix.Random) otherwise.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}

	return rand.New(rand.NewSource(seed))
}
