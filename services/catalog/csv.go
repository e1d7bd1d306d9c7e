package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// GameRecord is one denormalized row of the source dataset. Name and Rank
// are mandatory; Year is nil when the source has no usable value; missing
// sale figures default to 0. Total is carried as-is, never recomputed.
type GameRecord struct {
	Name        string
	Rank        int
	Genre       string
	Publisher   string
	Platform    string
	Year        *int16
	NASales     float64
	EUSales     float64
	JPSales     float64
	OtherSales  float64
	GlobalSales float64
}

// ReadCSV parses a catalog CSV file with a header row into records. Any row
// with a missing name or a non-integer rank fails the whole parse, so a bad
// file never reaches the store.
func ReadCSV(path string) ([]GameRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range []string{"Name", "Rank"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("dataset header is missing the %s column", col)
		}
	}

	var records []GameRecord
	line := 1
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %w", err)
		}
		line++

		row := make(map[string]string, len(index))
		for name, i := range index {
			if i < len(fields) {
				row[name] = fields[i]
			}
		}

		rec, err := recordFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// RecordsFromMaps converts already-tabular rows (column name -> raw value)
// into records, with the same parsing rules as ReadCSV.
func RecordsFromMaps(rows []map[string]string) ([]GameRecord, error) {
	records := make([]GameRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := recordFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func recordFromRow(row map[string]string) (GameRecord, error) {
	name := row["Name"]
	if name == "" {
		return GameRecord{}, errors.New("missing game name")
	}

	rank, err := strconv.Atoi(strings.TrimSpace(row["Rank"]))
	if err != nil {
		return GameRecord{}, fmt.Errorf("rank %q is not an integer", row["Rank"])
	}

	return GameRecord{
		Name:        name,
		Rank:        rank,
		Genre:       row["Genre"],
		Publisher:   row["Publisher"],
		Platform:    row["Platform"],
		Year:        parseYear(row["Year"]),
		NASales:     parseSale(row["NA_Sales"]),
		EUSales:     parseSale(row["EU_Sales"]),
		JPSales:     parseSale(row["JP_Sales"]),
		OtherSales:  parseSale(row["Other_Sales"]),
		GlobalSales: parseSale(row["Global_Sales"]),
	}, nil
}

// parseYear treats anything non-numeric ("", "N/A") as an unknown year.
func parseYear(s string) *int16 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return nil
	}
	year := int16(v)
	return &year
}

// parseSale treats anything non-numeric as zero sales.
func parseSale(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
