package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	creator "github.com/xml-creator/xml-creator"
	"github.com/xml-creator/xml-creator/assets"
	"github.com/xml-creator/xml-creator/config"
	"github.com/xml-creator/xml-creator/worksheet"
)

const APP = "xml-creator"
const VERSION = "v0.1.0"

type Options struct {
	Debug bool
}

type command struct {
	config string
	debug  bool
}

type fetcher interface {
	Fetch(ctx context.Context, spreadsheet, worksheet string) ([]creator.Record, error)
}

type uploader interface {
	Upload(ctx context.Context, name string, content []byte) error
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.config, "config", cmd.config, "Spreadsheet configuration file")

	return flagset
}

// load parses the spreadsheet configuration and the asset build options, so that any configuration
// error is reported before connecting to Google.
func (cmd *command) load(now time.Time) (*config.Config, assets.Options, error) {
	if strings.TrimSpace(cmd.config) == "" {
		return nil, assets.Options{}, fmt.Errorf("%w: --config is a required option", creator.ErrConfiguration)
	}

	conf, err := config.Load(cmd.config)
	if err != nil {
		return nil, assets.Options{}, err
	}

	location, err := conf.Settings.Location()
	if err != nil {
		return nil, assets.Options{}, err
	}

	options := assets.Options{
		Timestamp: now,
		Location:  location,
		Asset:     conf.Asset,
	}

	if conf.Settings.Rights != "" {
		if options.Rights, err = config.LoadRights(conf.Settings.Rights); err != nil {
			return nil, assets.Options{}, err
		}
	}

	if cmd.debug {
		debugf("Spreadsheet - name:%q  worksheet:%q  credentials:%s", conf.Spreadsheet.Name, conf.Worksheet.Name, conf.Settings.Credentials)
	}

	return conf, options, nil
}

func (cmd *command) reader(ctx context.Context, conf *config.Config) (fetcher, error) {
	client, err := worksheet.Authorize(ctx, conf.Settings.Credentials, conf.Settings.Scope)
	if err != nil {
		return nil, err
	}

	reader, err := worksheet.NewReader(ctx, client)
	if err != nil {
		return nil, err
	}

	reader.Debug = cmd.debug

	return reader, nil
}

func parse(args ...any) (context.Context, *Options) {
	ctx := context.Background()
	options := &Options{}

	for _, arg := range args {
		switch v := arg.(type) {
		case context.Context:
			ctx = v
		case *Options:
			options = v
		}
	}

	return ctx, options
}

// filename returns the name for the XML document, defaulting to the spreadsheet name. '@' is
// replaced with '_at_' and path separators with '_'.
func filename(conf *config.Config, override string) string {
	name := strings.TrimSpace(override)
	if name == "" {
		name = strings.TrimSpace(conf.Output.File)
	}

	if name == "" {
		name = strings.TrimSpace(conf.Spreadsheet.Name)
	}

	name = strings.NewReplacer("@", "_at_", "/", "_", `\`, "_").Replace(name)

	if !strings.EqualFold(filepath.Ext(name), ".xml") {
		name += ".xml"
	}

	return name
}

// store writes the file atomically by way of a temporary file in the same directory.
func store(file string, content []byte) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".xml-creator-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(content); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("    --debug        Displays internal information for diagnosing errors")
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
