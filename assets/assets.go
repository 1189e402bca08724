package assets

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	creator "github.com/xml-creator/xml-creator"
	"github.com/xml-creator/xml-creator/config"
)

const header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Options are the per-run settings for building an asset document. Timestamp is written to every
// asset as the create and launch time, so building twice with the same options gives identical
// documents. Rights is the rights dictionary; nil leaves the rights cell unfiltered.
type Options struct {
	Timestamp time.Time
	Location  *time.Location
	Asset     config.Asset
	Rights    []string
}

// Assets is the root element of the XML asset document.
type Assets struct {
	XMLName xml.Name `xml:"assets"`
	Assets  []Asset  `xml:"asset"`
}

type Asset struct {
	Language       string   `xml:"language,attr"`
	Description    string   `xml:"description,attr"`
	Title          string   `xml:"title,attr"`
	BaseFileName   string   `xml:"baseFileName,attr"`
	UniqueID       string   `xml:"uniqueId,attr"`
	LaunchDateTime string   `xml:"launchDateTime,attr"`
	CreateDateTime string   `xml:"createDateTime,attr"`
	Status         string   `xml:"status,attr"`
	Action         string   `xml:"action,attr"`
	Profiles       Profiles `xml:"profiles"`
	Files          Files    `xml:"files"`
	Rights         Rights   `xml:"rights"`
	Keywords       Keywords `xml:"keywords"`
}

type Profiles struct {
	Profiles []Profile `xml:"profile"`
}

type Profile struct {
	LaunchDateTime string `xml:"launchDateTime,attr"`
	UID            string `xml:"uid,attr"`
}

type Files struct {
	Files []File `xml:"file"`
}

type File struct {
	FileName string `xml:"fileName,attr"`
	Uploaded bool   `xml:"uploaded,attr"`
}

type Rights struct {
	Rights []Right `xml:"right"`
}

type Right struct {
	Name string `xml:"name,attr"`
}

type Keywords struct {
	Keywords []Keyword `xml:"keyword"`
}

type Keyword struct {
	Text string `xml:"text,attr"`
}

// Build selects the records whose render status matches the configured value and returns the
// serialized XML asset document.
func Build(records []creator.Record, cells config.Cells, options Options) ([]byte, error) {
	assets, err := Select(records, cells, options)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if err := assets.Write(&b); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Select returns one asset for each record with a render status matching the configured value, in
// record order. A mapped column missing from a record yields an empty value but a record without the
// render status column cannot be evaluated and fails with ErrData.
func Select(records []creator.Record, cells config.Cells, options Options) (*Assets, error) {
	if err := cells.Validate(); err != nil {
		return nil, err
	}

	location := options.Location
	if location == nil {
		location = time.UTC
	}

	timestamp := options.Timestamp.In(location).Format(time.RFC3339)

	assets := Assets{
		Assets: []Asset{},
	}

	for i, record := range records {
		status, ok := record[cells.RenderStatus]
		if !ok {
			return nil, fmt.Errorf("%w: row %v has no '%s' column", creator.ErrData, i+2, cells.RenderStatus)
		}

		if status != cells.RenderStatusValue {
			continue
		}

		filename := record[cells.Filename]

		asset := Asset{
			Language:       options.Asset.Language,
			Description:    record[cells.Description],
			Title:          record[cells.Title],
			BaseFileName:   filename,
			UniqueID:       uniqueID(filename),
			LaunchDateTime: timestamp,
			CreateDateTime: timestamp,
			Status:         options.Asset.Status,
			Action:         options.Asset.Action,
			Profiles: Profiles{
				Profiles: []Profile{
					{LaunchDateTime: timestamp, UID: options.Asset.ProfileUID},
				},
			},
			Files: Files{
				Files: []File{
					{FileName: filename, Uploaded: true},
				},
			},
			Rights:   Rights{Rights: []Right{}},
			Keywords: Keywords{Keywords: []Keyword{}},
		}

		for _, r := range rights(record[cells.Rights], options.Rights) {
			asset.Rights.Rights = append(asset.Rights.Rights, Right{Name: r})
		}

		for _, k := range keywords(record[cells.Keywords]) {
			asset.Keywords.Keywords = append(asset.Keywords.Keywords, Keyword{Text: k})
		}

		assets.Assets = append(assets.Assets, asset)
	}

	return &assets, nil
}

// Write serializes the asset document with an XML declaration.
func (a *Assets) Write(w io.Writer) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")

	if err := encoder.Encode(a); err != nil {
		return fmt.Errorf("error encoding XML asset document (%v)", err)
	}

	if err := encoder.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}

// uniqueID is the hex MD5 digest of the asset filename. Downstream consumers key
// assets on it, so it must not change for a given filename.
func uniqueID(filename string) string {
	sum := md5.Sum([]byte(filename))

	return hex.EncodeToString(sum[:])
}

func keywords(v string) []string {
	list := []string{}
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			list = append(list, k)
		}
	}

	return list
}
