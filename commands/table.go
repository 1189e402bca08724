package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/xml-creator/xml-creator/assets"
)

func render(w io.Writer, doc *assets.Assets) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Title", "File", "Rights", "Keywords"})

	for i, a := range doc.Assets {
		t.AppendRow(table.Row{i + 1, a.Title, a.BaseFileName, strings.Join(rights(a), ", "), strings.Join(keywords(a), ", ")})
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%v assets", len(doc.Assets))})
	t.Render()
}

func rights(a assets.Asset) []string {
	list := []string{}
	for _, r := range a.Rights.Rights {
		list = append(list, r.Name)
	}

	return list
}

func keywords(a assets.Asset) []string {
	list := []string{}
	for _, k := range a.Keywords.Keywords {
		list = append(list, k.Text)
	}

	return list
}
