package geom

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadTable reads a CSV of region keys and numeric attribute values.
// Column detection: county|county_name|name|region|key and
// median_income|income|value|median (case-insensitive); keyCol/valueCol
// override detection when non-empty. Blank or non-numeric cells become NaN
// so the join policy can decide what to do with them.
func LoadTable(path, keyCol, valueCol string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("csv %s: %w", path, err)
	}
	if len(recs) == 0 {
		return Table{}, fmt.Errorf("csv %s: empty file", path)
	}
	header := recs[0]
	idxKey := findColumn(header, keyCol, []string{"county", "county_name", "name", "region", "key"})
	idxVal := findColumn(header, valueCol, []string{"median_income", "income", "value", "median"})
	if idxKey == -1 || idxVal == -1 {
		return Table{}, fmt.Errorf("%w: key/value columns in %s (have %v)", ErrSchema, path, header)
	}
	t := Table{KeyColumn: header[idxKey], ValueColumn: header[idxVal]}
	for _, row := range recs[1:] {
		if idxKey >= len(row) || idxVal >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[idxKey])
		if name == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idxVal]), 64)
		if err != nil {
			v = math.NaN()
		}
		t.Rows = append(t.Rows, Row{Key: NormalizeKey(name), Name: name, Value: v})
	}
	if len(t.Rows) == 0 {
		return Table{}, fmt.Errorf("csv %s: no usable rows", path)
	}
	return t, nil
}

// findColumn returns the index of the wanted header, or the first header
// matching one of the candidates when want is empty.
func findColumn(header []string, want string, candidates []string) int {
	if want != "" {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return i
			}
		}
		return -1
	}
	for _, c := range candidates {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), c) {
				return i
			}
		}
	}
	return -1
}
