package commands

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	creator "github.com/xml-creator/xml-creator"
	"github.com/xml-creator/xml-creator/assets"
	"github.com/xml-creator/xml-creator/config"
	"github.com/xml-creator/xml-creator/upload"
)

var PublishCmd = Publish{
	command: command{
		config: DEFAULT_CONFIG,
		debug:  false,
	},

	server:  DEFAULT_SERVER,
	file:    "",
	workdir: DEFAULT_WORKDIR,
	dryrun:  false,
}

type Publish struct {
	command
	server  string
	file    string
	workdir string
	dryrun  bool
}

func (cmd *Publish) Name() string {
	return "publish"
}

func (cmd *Publish) Description() string {
	return "Builds the XML asset document from a Google Sheets worksheet and uploads it to an FTP server"
}

func (cmd *Publish) Usage() string {
	return "--config <file> --server <file>"
}

func (cmd *Publish) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] publish [options] --config <file> --server <file>\n", APP)
	fmt.Println()
	fmt.Println("  Builds an XML asset document from the worksheet rows marked as rendered and uploads it to an FTP server")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    xml-creator --debug publish --config "config.yml" --server "server.yml"`)
	fmt.Println(`    xml-creator publish --config "config.yml" --server "server.yml" --file "assets.xml" --dryrun`)
	fmt.Println()
}

func (cmd *Publish) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("publish")

	flagset.StringVar(&cmd.server, "server", cmd.server, "FTP server configuration file")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Remote XML file name. Defaults to the configured output file or the spreadsheet name")
	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for a local copy of the uploaded XML file. Disabled if blank")
	flagset.BoolVar(&cmd.dryrun, "dryrun", cmd.dryrun, "Builds the XML file without uploading it")

	return flagset
}

func (cmd *Publish) Execute(args ...any) error {
	ctx, options := parse(args...)

	cmd.debug = options.Debug

	// ... load configuration
	conf, opts, err := cmd.load(time.Now())
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.server) == "" {
		return fmt.Errorf("%w: --server is a required option", creator.ErrConfiguration)
	}

	server, err := config.LoadServer(cmd.server)
	if err != nil {
		return err
	}

	// ... fetch worksheet
	reader, err := cmd.reader(ctx, conf)
	if err != nil {
		return err
	}

	uploader := upload.NewUploader(server.FTP)
	uploader.Debug = cmd.debug

	return cmd.publish(ctx, conf, opts, reader, uploader)
}

func (cmd *Publish) publish(ctx context.Context, conf *config.Config, opts assets.Options, r fetcher, u uploader) error {
	records, err := r.Fetch(ctx, conf.Spreadsheet.Name, conf.Worksheet.Name)
	if err != nil {
		return err
	}

	infof("Retrieved %v rows from %v/%v", len(records), conf.Spreadsheet.Name, conf.Worksheet.Name)

	doc, err := assets.Select(records, conf.Cells, opts)
	if err != nil {
		return err
	}

	if len(doc.Assets) == 0 {
		infof("No assets are ready. Check back later.")
		return nil
	}

	var b bytes.Buffer
	if err := doc.Write(&b); err != nil {
		return err
	}

	name := filename(conf, cmd.file)

	if strings.TrimSpace(cmd.workdir) != "" {
		file := filepath.Join(cmd.workdir, "xml", name)
		if err := store(file, b.Bytes()); err != nil {
			warnf("Unable to keep local copy %v (%v)", file, err)
		} else if cmd.debug {
			debugf("Stored local copy %v", file)
		}
	}

	if cmd.dryrun {
		infof("Dry run - built %v with %v assets, skipped upload", name, len(doc.Assets))
		return nil
	}

	if err := u.Upload(ctx, name, b.Bytes()); err != nil {
		return err
	}

	infof("Uploaded %v with %v assets", name, len(doc.Assets))

	return nil
}
