package pagemap

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Rows is a raw tabular read of the page-mapping file: a header plus one
// string slice per non-header row.
type Rows struct {
	Header []string
	Cells  [][]string
}

// ReadCSV reads the page-mapping table. The mapping is often exported as
// tab-separated text, so tab separation is tried first and comma is the
// fallback when the header does not split.
func ReadCSV(r io.Reader) (Rows, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Rows{}, fmt.Errorf("reading page map: %w", err)
	}

	rows, err := readSeparated(data, '\t')
	if err != nil || len(rows.Header) < 2 {
		rows, err = readSeparated(data, ',')
	}
	if err != nil {
		return Rows{}, fmt.Errorf("parsing page map: %w", err)
	}
	return rows, nil
}

// ReadCSVFile reads the page-mapping table from path.
func ReadCSVFile(path string) (Rows, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rows{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

func readSeparated(data []byte, sep rune) (Rows, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sep
	records, err := reader.ReadAll()
	if err != nil {
		return Rows{}, err
	}
	if len(records) == 0 {
		return Rows{}, fmt.Errorf("page map is empty")
	}
	return Rows{Header: records[0], Cells: records[1:]}, nil
}
