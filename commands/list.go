package commands

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xml-creator/xml-creator/assets"
)

var ListCmd = List{
	command: command{
		config: DEFAULT_CONFIG,
		debug:  false,
	},
}

type List struct {
	command
	tsv bool
}

func (cmd *List) Name() string {
	return "list"
}

func (cmd *List) Description() string {
	return "Lists the worksheet rows that are ready to be published"
}

func (cmd *List) Usage() string {
	return "--config <file>"
}

func (cmd *List) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] list [options] --config <file>\n", APP)
	fmt.Println()
	fmt.Println("  Lists the worksheet rows marked as rendered, i.e. the assets that would be published")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    xml-creator list --config "config.yml"`)
	fmt.Println(`    xml-creator list --config "config.yml" --tsv > assets.tsv`)
	fmt.Println()
}

func (cmd *List) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("list")

	flagset.BoolVar(&cmd.tsv, "tsv", cmd.tsv, "Lists the assets as TSV rather than a table")

	return flagset
}

func (cmd *List) Execute(args ...any) error {
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

	if cmd.tsv {
		return assetsToTSV(os.Stdout, doc)
	}

	render(os.Stdout, doc)

	return nil
}
