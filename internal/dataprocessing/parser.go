package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ParseFile reads one input export into a SourceTable. CSV files go through
// the ordered encoding fallback; .xlsx files are read with excelize.
func ParseFile(path string, encodings []string) (*SourceTable, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readExcelRows(path)
	} else {
		rows, err = readCSVRows(path, encodings)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &SourceTable{Name: name}, nil
	}

	headers := rows[0]
	width := len(headers)
	for _, row := range rows[1:] {
		if len(row) > width {
			width = len(row)
		}
	}

	table := &SourceTable{Name: name, Columns: make([]Column, width)}
	for ci := 0; ci < width; ci++ {
		colName := ""
		if ci < len(headers) {
			colName = strings.TrimSpace(headers[ci])
		}
		cells := make([]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			if ci < len(row) {
				cells = append(cells, row[ci])
			} else {
				cells = append(cells, "")
			}
		}
		table.Columns[ci] = Column{Name: colName, Cells: cells}
	}
	return table, nil
}

func readCSVRows(path string, encodings []string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := decodeWithFallback(raw, encodings)
	if err != nil {
		return nil, err
	}
	text = strings.TrimPrefix(text, "\ufeff")

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

// decodeWithFallback tries each configured encoding in order and returns
// the first successful decode. Later encodings are never consulted once an
// earlier one succeeds, even if they would also decode the bytes.
func decodeWithFallback(raw []byte, encodings []string) (string, error) {
	var lastErr error
	for _, name := range encodings {
		cm := charmapFor(name)
		if cm == nil {
			// UTF-8: accept only valid byte sequences
			if utf8.Valid(raw) {
				return string(raw), nil
			}
			lastErr = fmt.Errorf("input is not valid UTF-8")
			continue
		}
		decoded, _, err := transform.Bytes(cm.NewDecoder(), raw)
		if err != nil {
			lastErr = fmt.Errorf("decode as %s failed: %w", name, err)
			continue
		}
		return string(decoded), nil
	}
	return "", fmt.Errorf("no configured encoding decoded the input: %w", lastErr)
}

// charmapFor maps an encoding name to its decoder; nil means plain UTF-8.
func charmapFor(name string) encoding.Encoding {
	switch strings.ToLower(name) {
	case "windows-1250":
		return charmap.Windows1250
	case "iso-8859-2":
		return charmap.ISO8859_2
	case "windows-1252":
		return charmap.Windows1252
	case "iso-8859-1":
		return charmap.ISO8859_1
	default:
		return nil
	}
}

// sniffDelimiter picks the delimiter by majority vote over the first line.
// Polish statistical exports are frequently semicolon-separated.
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

// readExcelRows extracts rows from the first sheet that has any content.
func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}
	return nil, fmt.Errorf("no sheet with data found")
}
