package owners

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var addressColumns = []string{"address", "owner", "wallet", "owner address"}

// ParseCSV reads owner addresses from a CSV export. The address column is
// found by header name; without a recognised header the first column is used
// and the first row is kept as data.
func ParseCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var list []string
	col := findColumnIndex(first, addressColumns)
	if col == -1 {
		col = 0
		if len(first) > 0 && strings.TrimSpace(first[0]) != "" {
			list = append(list, strings.TrimSpace(first[0]))
		}
	}

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if col >= len(row) {
			return nil, fmt.Errorf("csv line %d: missing address column", line)
		}
		if v := strings.TrimSpace(row[col]); v != "" {
			list = append(list, v)
		}
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

func findColumnIndex(header []string, names []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, n := range names {
			if h == n {
				return i
			}
		}
	}
	return -1
}
