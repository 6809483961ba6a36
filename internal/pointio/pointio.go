// Package pointio reads point clouds from CSV or JSON and writes analysis
// results as JSON for the lvtda command.
package pointio

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtda/tdaerr"
)

// ErrMalformed indicates input that is not a table of numbers.
var ErrMalformed = tdaerr.Kind(tdaerr.ErrShape, "pointio: malformed point data")

// Format names accepted by Read.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ReadOptions controls CSV parsing.
type ReadOptions struct {
	Header    bool // skip the first record
	Delimiter rune // defaults to ','
}

// ReadFile reads points from path. An empty format is inferred from the
// extension: ".json" is JSON, anything else CSV.
func ReadFile(path, format string, opts ReadOptions) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open points: %w", err)
	}
	defer f.Close()

	if format == "" {
		format = FormatCSV
		if strings.EqualFold(filepath.Ext(path), ".json") {
			format = FormatJSON
		}
	}

	return Read(f, format, opts)
}

// Read parses points from r in the given format.
func Read(r io.Reader, format string, opts ReadOptions) ([][]float64, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r, opts)
	case FormatJSON:
		return ReadJSON(r)
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrMalformed)
	}
}

// ReadCSV parses one point per record. Lines starting with '#' are comments.
// Row lengths are not checked here; pointcloud.New reports ragged input.
func ReadCSV(r io.Reader, opts ReadOptions) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	var points [][]float64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %v: %w", err, ErrMalformed)
		}
		if line == 1 && opts.Header {
			continue
		}
		p := make([]float64, len(rec))
		for k, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("ReadCSV: record %d field %d %q: %w", line, k+1, field, ErrMalformed)
			}
			p[k] = v
		}
		points = append(points, p)
	}

	return points, nil
}

// ReadJSON parses a JSON array of coordinate arrays.
func ReadJSON(r io.Reader) ([][]float64, error) {
	var points [][]float64
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return nil, fmt.Errorf("ReadJSON: %v: %w", err, ErrMalformed)
	}

	return points, nil
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
