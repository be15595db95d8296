package processor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"campaign-server/internal/whatsapp"
)

// MinNumberDigits is the shortest number accepted from an import
const MinNumberDigits = 10

const maxImportBytes = 10 << 20

// ContactRow is one parsed import row. Number is digits only.
type ContactRow struct {
	Name   string
	Number string
	Email  string
}

type columns struct {
	name, number, email int
}

var positional = columns{name: 0, number: 1, email: 2}

// ParseContacts reads CSV rows of name, number and email. A header row is
// recognised by its column names, otherwise columns are positional. Rows
// whose number has fewer than MinNumberDigits digits are dropped and counted.
func ParseContacts(r io.Reader) ([]ContactRow, int, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImportBytes+1))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read import file: %w", err)
	}
	if len(data) > maxImportBytes {
		return nil, 0, ErrFileTooLarge
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if len(records) == 0 {
		return nil, 0, nil
	}

	cols := positional
	if header, ok := headerColumns(records[0]); ok {
		cols = header
		records = records[1:]
	}

	rows := make([]ContactRow, 0, len(records))
	discarded := 0
	for _, record := range records {
		row, ok := parseRecord(record, cols)
		if !ok {
			discarded++
			continue
		}
		rows = append(rows, row)
	}
	return rows, discarded, nil
}

func parseRecord(record []string, cols columns) (ContactRow, bool) {
	// a single column is always the number
	if len(record) == 1 {
		cols = columns{name: -1, number: 0, email: -1}
	}
	number := whatsapp.DigitsOnly(field(record, cols.number))
	if len(number) < MinNumberDigits {
		return ContactRow{}, false
	}
	return ContactRow{
		Name:   field(record, cols.name),
		Number: number,
		Email:  field(record, cols.email),
	}, true
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func headerColumns(record []string) (columns, bool) {
	cols := columns{name: -1, number: -1, email: -1}
	for i, cell := range record {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "name", "nome":
			cols.name = i
		case "number", "numero", "número", "phone", "telefone":
			cols.number = i
		case "email", "e-mail":
			cols.email = i
		}
	}
	if cols.number < 0 {
		return columns{}, false
	}
	return cols, true
}

func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.IndexByte(line, ';') >= 0 && bytes.IndexByte(line, ',') < 0 {
		return ';'
	}
	return ','
}
