package worksheet

import (
	"fmt"
	"strings"

	creator "github.com/xml-creator/xml-creator"
)

type column struct {
	index  int
	header string
}

// makeRecords converts the worksheet rows to records keyed by the header row. Columns with a blank
// header are ignored and short rows are padded with empty values. Cell values are not modified.
func makeRecords(rows [][]interface{}) ([]creator.Record, error) {
	records := []creator.Record{}
	if len(rows) == 0 {
		return records, nil
	}

	// .. build index
	columns := []column{}
	index := map[string]int{}
	for i, v := range rows[0] {
		k := clean(v)
		if k == "" {
			continue
		}

		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("%w: duplicate column name '%s'", creator.ErrData, k)
		}

		index[k] = i
		columns = append(columns, column{index: i, header: k})
	}

	// ... records
	for _, row := range rows[1:] {
		record := make(creator.Record, len(columns))
		for _, c := range columns {
			v := ""
			if c.index < len(row) && row[c.index] != nil {
				v = fmt.Sprintf("%v", row[c.index])
			}

			record[c.header] = v
		}

		records = append(records, record)
	}

	return records, nil
}

func clean(v interface{}) string {
	if v == nil {
		return ""
	}

	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
