package creator

import (
	"errors"
)

var (
	// ErrConfiguration is returned for missing, unreadable or invalid configuration files and keys.
	ErrConfiguration = errors.New("configuration error")

	// ErrAuthentication is returned when the Google credentials are invalid or access is denied.
	ErrAuthentication = errors.New("authentication error")

	// ErrData is returned when the spreadsheet, worksheet or its content cannot be used.
	ErrData = errors.New("data error")

	// ErrTransfer is returned when the XML document could not be delivered to the FTP server.
	ErrTransfer = errors.New("transfer error")
)

// Record is a single worksheet row, keyed by the column header.
type Record map[string]string
