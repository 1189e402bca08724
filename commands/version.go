package commands

import (
	uhppoted "github.com/uhppoted/uhppoted-lib/command"
)

// VersionCmd displays the xml-creator version. The command itself is the
// stock uhppoted-lib implementation.
var VersionCmd = uhppoted.Version{
	Application: APP,
	Version:     VERSION,
}
