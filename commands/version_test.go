package commands

import (
	"testing"

	uhppoted "github.com/uhppoted/uhppoted-lib/command"
)

func TestVersionCmd(t *testing.T) {
	var cmd uhppoted.Command = &VersionCmd

	if cmd.Name() != "version" {
		t.Errorf("Incorrect command name - expected:%v, got:%v", "version", cmd.Name())
	}

	if VersionCmd.Application != APP {
		t.Errorf("Incorrect application - expected:%v, got:%v", APP, VersionCmd.Application)
	}

	if VersionCmd.Version != VERSION {
		t.Errorf("Incorrect version - expected:%v, got:%v", VERSION, VersionCmd.Version)
	}

	if flagset := cmd.FlagSet(); flagset == nil || flagset.Name() != "version" {
		t.Errorf("Invalid 'version' flagset %v", flagset)
	}
}

func TestCommandsImplementCommand(t *testing.T) {
	cli := []uhppoted.Command{
		&VersionCmd,
		&PublishCmd,
		&GetCmd,
		&ListCmd,
	}

	expected := []string{"version", "publish", "get", "list"}

	for i, cmd := range cli {
		if cmd.Name() != expected[i] {
			t.Errorf("Incorrect command name - expected:%v, got:%v", expected[i], cmd.Name())
		}

		if cmd.FlagSet() == nil {
			t.Errorf("'%v' command has no flagset", cmd.Name())
		}
	}
}
