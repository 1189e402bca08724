package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	creator "github.com/xml-creator/xml-creator"
)

const sample = `
settings:
  credentials: credentials.json
  scope:
    - https://spreadsheets.google.com/feeds
    - https://www.googleapis.com/auth/drive
spreadsheet:
  name: Video Tracker
worksheet:
  name: Sheet1
cells:
  title: Title
  description: Description
  filename: Filename
  keywords: Keywords
  rights: Rights
  renderStatus: render-status
  renderStatusValue: done
`

func write(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "config.yml", sample)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "credentials.json"), c.Settings.Credentials)
	assert.Equal(t, []string{"https://spreadsheets.google.com/feeds", "https://www.googleapis.com/auth/drive"}, c.Settings.Scope)
	assert.Equal(t, "Video Tracker", c.Spreadsheet.Name)
	assert.Equal(t, "Sheet1", c.Worksheet.Name)
	assert.Equal(t, Cells{
		Title:             "Title",
		Description:       "Description",
		Filename:          "Filename",
		Keywords:          "Keywords",
		Rights:            "Rights",
		RenderStatus:      "render-status",
		RenderStatusValue: "done",
	}, c.Cells)

	assert.Equal(t, "America/New_York", c.Settings.Timezone)
	assert.Equal(t, Asset{Language: "en", ProfileUID: "5afbb2681e654c9eb1ffa17a741b44e8", Status: "Unencoded", Action: "INSERT"}, c.Asset)
	assert.Empty(t, c.Settings.Rights)
}

func TestLoadWithAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "config.yml", `
settings:
  credentials: /etc/xml-creator/credentials.json
  scope: [https://www.googleapis.com/auth/drive]
  timezone: Europe/London
  rights: rights.yml
spreadsheet:
  name: Video Tracker
worksheet:
  name: Sheet1
cells:
  title: Title
  description: Description
  filename: Filename
  keywords: Keywords
  rights: Rights
  renderStatus: render-status
  renderStatusValue: done
asset:
  language: fr
output:
  file: videos.xml
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/xml-creator/credentials.json", c.Settings.Credentials)
	assert.Equal(t, filepath.Join(dir, "rights.yml"), c.Settings.Rights)
	assert.Equal(t, "Europe/London", c.Settings.Timezone)
	assert.Equal(t, "fr", c.Asset.Language)
	assert.Equal(t, "INSERT", c.Asset.Action)
	assert.Equal(t, "videos.xml", c.Output.File)
}

func TestLoadWithMissingTitle(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "config.yml", `
settings:
  credentials: credentials.json
  scope: [https://www.googleapis.com/auth/drive]
spreadsheet:
  name: Video Tracker
worksheet:
  name: Sheet1
cells:
  description: Description
  filename: Filename
  keywords: Keywords
  rights: Rights
  renderStatus: render-status
  renderStatusValue: done
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, creator.ErrConfiguration)
	assert.Contains(t, err.Error(), "cells.title")
}

func TestLoadWithMissingSections(t *testing.T) {
	tests := map[string]string{
		"settings.credentials": `settings: {scope: [x]}`,
		"settings.scope":       `settings: {credentials: credentials.json}`,
		"spreadsheet.name":     `settings: {credentials: credentials.json, scope: [x]}`,
	}

	for key, content := range tests {
		t.Run(key, func(t *testing.T) {
			path := write(t, t.TempDir(), "config.yml", content)

			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, creator.ErrConfiguration)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadWithInvalidTimezone(t *testing.T) {
	path := write(t, t.TempDir(), "config.yml", `
settings:
  credentials: credentials.json
  scope: [https://www.googleapis.com/auth/drive]
  timezone: Mars/Olympus_Mons
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, creator.ErrConfiguration)
	assert.Contains(t, err.Error(), "settings.timezone")
}

func TestLoadWithMalformedYAML(t *testing.T) {
	path := write(t, t.TempDir(), "config.yml", "settings: [credentials")

	_, err := Load(path)
	assert.ErrorIs(t, err, creator.ErrConfiguration)
}

func TestLoadWithMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, creator.ErrConfiguration)
}

func TestCellsValidate(t *testing.T) {
	cells := Cells{Title: "Title", RenderStatus: "render-status"}

	err := cells.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, creator.ErrConfiguration)
	assert.Equal(t, "configuration error: missing 'cells.description', 'cells.filename', 'cells.keywords', 'cells.rights', 'cells.renderStatusValue'", err.Error())
}

func TestLoadServer(t *testing.T) {
	path := write(t, t.TempDir(), "server.yml", `
FTP:
  host: ftp.example.com
  user: uploader
  pass: qwerty
  dir: /incoming/xml
`)

	s, err := LoadServer(path)
	require.NoError(t, err)

	assert.Equal(t, FTP{Host: "ftp.example.com", User: "uploader", Pass: "qwerty", Dir: "/incoming/xml", Timeout: 30 * time.Second}, s.FTP)
	assert.Equal(t, "ftp.example.com:21", s.FTP.Address())
}

func TestLoadServerWithEnvironment(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, ".env", "XMLCREATOR_TEST_FTP_USER=uploader\n")
	t.Cleanup(func() { os.Unsetenv("XMLCREATOR_TEST_FTP_USER") })
	t.Setenv("XMLCREATOR_TEST_FTP_PASS", "pa$$word")

	path := write(t, dir, "server.yml", `
FTP:
  host: ftp.example.com:2121
  user: ${XMLCREATOR_TEST_FTP_USER}
  pass: ${XMLCREATOR_TEST_FTP_PASS}
  dir: /incoming
  tls: true
  timeout: 5s
`)

	s, err := LoadServer(path)
	require.NoError(t, err)

	assert.Equal(t, "uploader", s.FTP.User)
	assert.Equal(t, "pa$$word", s.FTP.Pass)
	assert.True(t, s.FTP.TLS)
	assert.Equal(t, 5*time.Second, s.FTP.Timeout)
	assert.Equal(t, "ftp.example.com:2121", s.FTP.Address())
}

func TestLoadServerWithMissingKeys(t *testing.T) {
	path := write(t, t.TempDir(), "server.yml", `
FTP:
  host: ftp.example.com
  user: uploader
`)

	_, err := LoadServer(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, creator.ErrConfiguration)
	assert.Contains(t, err.Error(), "FTP.pass")
	assert.Contains(t, err.Error(), "FTP.dir")
}

func TestFTPAddress(t *testing.T) {
	tests := map[string]string{
		"ftp.example.com":      "ftp.example.com:21",
		" ftp.example.com ":    "ftp.example.com:21",
		"ftp.example.com:2121": "ftp.example.com:2121",
		"192.168.1.100":        "192.168.1.100:21",
		"[::1]:990":            "[::1]:990",
		"::1":                  "[::1]:21",
	}

	for host, expected := range tests {
		assert.Equal(t, expected, FTP{Host: host}.Address(), host)
	}
}

func TestLoadRightsMapping(t *testing.T) {
	path := write(t, t.TempDir(), "rights.yml", `
rights:
  NFL: National Football League
  NBA: National Basketball Association
  MLB: Major League Baseball
`)

	rights, err := LoadRights(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"NFL", "NBA", "MLB"}, rights)
}

func TestLoadRightsList(t *testing.T) {
	path := write(t, t.TempDir(), "rights.yml", "rights: [NFL, NBA]\n")

	rights, err := LoadRights(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"NFL", "NBA"}, rights)
}

func TestLoadRightsEmpty(t *testing.T) {
	path := write(t, t.TempDir(), "rights.yml", "rights: {}\n")

	rights, err := LoadRights(path)
	require.NoError(t, err)
	assert.NotNil(t, rights)
	assert.Empty(t, rights)
}

func TestLoadRightsWithoutRights(t *testing.T) {
	path := write(t, t.TempDir(), "rights.yml", "sports: [NFL, NBA]\n")

	_, err := LoadRights(path)
	assert.ErrorIs(t, err, creator.ErrConfiguration)
}
