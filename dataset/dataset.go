// Package dataset reads curves from tabular files. Columns go in pairs, the x
// values of a curve followed by its y values. An optional header row gives the
// name of each curve in its x column and an empty row ends a curve.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/midbel/econcharts/curve"
	"github.com/midbel/econcharts/sdcurve"
)

type Set struct {
	Curves []curve.Curve
	Names  []string
}

type CellError struct {
	Row    int
	Col    int
	Reason string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s: row %d, column %d: %s", sdcurve.ErrInvalidInput, e.Row, e.Col, e.Reason)
}

func (e *CellError) Unwrap() error {
	return sdcurve.ErrInvalidInput
}

// Load reads the curves of file, choosing the format from its extension. sheet
// is only used by spreadsheets; the first one is read when empty.
func Load(file, sheet string) (Set, error) {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".csv", ".txt":
		r, err := os.Open(file)
		if err != nil {
			return Set{}, err
		}
		defer r.Close()
		return ReadCSV(r)
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(file)
		if err != nil {
			return Set{}, err
		}
		defer f.Close()
		return readWorkbook(f, sheet)
	default:
		return Set{}, fmt.Errorf("%w: unsupported file type %q", sdcurve.ErrInvalidInput, ext)
	}
}

func ReadCSV(r io.Reader) (Set, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	rs.Comment = '#'

	rows, err := rs.ReadAll()
	if err != nil {
		return Set{}, err
	}
	return parse(rows)
}

func ReadXLSX(r io.Reader, sheet string) (Set, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Set{}, err
	}
	defer f.Close()
	return readWorkbook(f, sheet)
}

func readWorkbook(f *excelize.File, sheet string) (Set, error) {
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return Set{}, fmt.Errorf("%w: workbook has no sheet", sdcurve.ErrInvalidInput)
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Set{}, err
	}
	return parse(rows)
}

func parse(rows [][]string) (Set, error) {
	var (
		set   Set
		width int
	)
	for _, row := range rows {
		width = max(width, len(trimRow(row)))
	}
	if width == 0 {
		return set, fmt.Errorf("%w: no data found", sdcurve.ErrInvalidInput)
	}
	if width%2 != 0 {
		return set, fmt.Errorf("%w: %d columns found, columns go by pairs of x and y", sdcurve.ErrInvalidInput, width)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		for i := 0; i < width; i += 2 {
			set.Names = append(set.Names, strings.TrimSpace(cell(rows[0], i)))
		}
		rows = rows[1:]
	}
	offset := 1
	if len(set.Names) > 0 {
		offset++
	}
	for i := 0; i < width; i += 2 {
		var (
			xs   []float64
			ys   []float64
			done bool
		)
		for j, row := range rows {
			x, y := strings.TrimSpace(cell(row, i)), strings.TrimSpace(cell(row, i+1))
			if x == "" && y == "" {
				done = len(xs) > 0
				continue
			}
			if done {
				return set, &CellError{Row: j + offset, Col: i + 1, Reason: "values found after the end of the curve"}
			}
			if x == "" || y == "" {
				return set, &CellError{Row: j + offset, Col: i + 1, Reason: "missing coordinate"}
			}
			fx, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return set, &CellError{Row: j + offset, Col: i + 1, Reason: fmt.Sprintf("%q is not a number", x)}
			}
			fy, err := strconv.ParseFloat(y, 64)
			if err != nil {
				return set, &CellError{Row: j + offset, Col: i + 2, Reason: fmt.Sprintf("%q is not a number", y)}
			}
			xs = append(xs, fx)
			ys = append(ys, fy)
		}
		c, err := curve.FromXY(xs, ys)
		if err != nil {
			return set, fmt.Errorf("curve %d: %w", i/2+1, err)
		}
		set.Curves = append(set.Curves, c)
	}
	return set, nil
}

func isHeader(row []string) bool {
	for _, str := range row {
		str = strings.TrimSpace(str)
		if str == "" {
			continue
		}
		if _, err := strconv.ParseFloat(str, 64); err != nil {
			return true
		}
	}
	return false
}

func trimRow(row []string) []string {
	n := len(row)
	for n > 0 && strings.TrimSpace(row[n-1]) == "" {
		n--
	}
	return row[:n]
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
