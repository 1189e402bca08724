package commands

import (
	"bytes"
	"flag"
	"fmt"
	"time"

	"github.com/xml-creator/xml-creator/assets"
)

var GetCmd = Get{
	command: command{
		config: DEFAULT_CONFIG,
		debug:  false,
	},

	file: "",
}

type Get struct {
	command
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Builds the XML asset document from a Google Sheets worksheet and stores it to a local file"
}

func (cmd *Get) Usage() string {
	return "--config <file> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --config <file> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Builds an XML asset document from the worksheet rows marked as rendered and stores it to a local file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    xml-creator --debug get --config "config.yml" --file "assets.xml"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.file, "file", cmd.file, "XML file. Defaults to the configured output file or the spreadsheet name in the current directory")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	ctx, options := parse(args...)

	cmd.debug = options.Debug

	conf, opts, err := cmd.load(time.Now())
	if err != nil {
		return err
	}

	reader, err := cmd.reader(ctx, conf)
	if err != nil {
		return err
	}

	records, err := reader.Fetch(ctx, conf.Spreadsheet.Name, conf.Worksheet.Name)
	if err != nil {
		return err
	}

	doc, err := assets.Select(records, conf.Cells, opts)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	if err := doc.Write(&b); err != nil {
		return fmt.Errorf("error creating XML file (%v)", err)
	}

	file := cmd.file
	if file == "" {
		file = filename(conf, "")
	}

	if err := store(file, b.Bytes()); err != nil {
		return err
	}

	infof("Stored %v assets to file %s", len(doc.Assets), file)

	return nil
}
