package commands

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/xml-creator/xml-creator/assets"
)

func assetsToTSV(f io.Writer, doc *assets.Assets) error {
	header := []string{"Title", "Description", "File", "Unique ID", "Rights", "Keywords"}

	// ... records
	records := [][]string{}
	for _, a := range doc.Assets {
		record := []string{
			a.Title,
			a.Description,
			a.BaseFileName,
			a.UniqueID,
			strings.Join(rights(a), ","),
			strings.Join(keywords(a), ","),
		}

		records = append(records, record)
	}

	// ... write to file
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(header)
	for _, record := range records {
		w.Write(record)
	}

	w.Flush()

	return w.Error()
}
