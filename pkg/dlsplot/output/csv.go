// Package output serializes rendered series to CSV, ZIP and JSON.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

// DiameterHeader is the first CSV column header.
const DiameterHeader = "Diameter (nm)"

// ErrMalformedCSV indicates a series CSV that cannot be parsed back.
var ErrMalformedCSV = errors.New("malformed series csv")

// WeightingTitle returns the display name of a weighting, e.g. "Intensity".
func WeightingTitle(w models.Weighting) string {
	return cases.Title(language.English).String(string(w))
}

// Headers returns the CSV header row for a weighting.
func Headers(w models.Weighting) []string {
	title := WeightingTitle(w)
	return []string{DiameterHeader, title + " (%)", title + " (normalized)"}
}

// WriteCSV writes one series as diameter, raw value and normalized value.
// Floats use the shortest representation that parses back exactly.
func WriteCSV(w io.Writer, s models.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers(s.Weighting)); err != nil {
		return err
	}
	for i := range s.X {
		record := []string{
			formatFloat(s.X[i]),
			formatFloat(s.Raw[i]),
			formatFloat(s.Normalized[i]),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a series CSV written by WriteCSV. The weighting is taken
// from the second header cell.
func ReadCSV(r io.Reader) (models.Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	header, err := cr.Read()
	if err != nil {
		return models.Series{}, fmt.Errorf("%w: header: %v", ErrMalformedCSV, err)
	}
	if header[0] != DiameterHeader {
		return models.Series{}, fmt.Errorf("%w: unexpected first column %q", ErrMalformedCSV, header[0])
	}
	name, _, _ := strings.Cut(header[1], " (")
	weighting, err := models.ParseWeighting(name)
	if err != nil {
		return models.Series{}, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	s := models.Series{Weighting: weighting}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Series{}, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}
		var vals [3]float64
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return models.Series{}, fmt.Errorf("%w: line %d: %v", ErrMalformedCSV, line, err)
			}
			vals[i] = v
		}
		s.X = append(s.X, vals[0])
		s.Raw = append(s.Raw, vals[1])
		s.Normalized = append(s.Normalized, vals[2])
	}
	return s, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
