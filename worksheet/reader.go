package worksheet

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	creator "github.com/xml-creator/xml-creator"
)

const mimeSpreadsheet = "application/vnd.google-apps.spreadsheet"

// Reader fetches worksheets through the Google Sheets and Google Drive APIs.
type Reader struct {
	sheets *sheets.Service
	drive  *drive.Service
	Debug  bool
}

// NewReader creates the Sheets and Drive clients for an authorised HTTP client.
func NewReader(ctx context.Context, client *http.Client) (*Reader, error) {
	return newReader(ctx, []option.ClientOption{option.WithHTTPClient(client)}, []option.ClientOption{option.WithHTTPClient(client)})
}

func newReader(ctx context.Context, sheetsOptions, driveOptions []option.ClientOption) (*Reader, error) {
	google, err := sheets.NewService(ctx, sheetsOptions...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	gdrive, err := drive.NewService(ctx, driveOptions...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	return &Reader{
		sheets: google,
		drive:  gdrive,
	}, nil
}

// Fetch retrieves every row of the named worksheet in the named spreadsheet. The first row of the
// worksheet is the header row and each subsequent row is returned as a record keyed by header.
func (r *Reader) Fetch(ctx context.Context, spreadsheet, worksheet string) ([]creator.Record, error) {
	id, err := r.lookup(ctx, spreadsheet)
	if err != nil {
		return nil, err
	}

	if r.Debug {
		log.Printf("%-5s spreadsheet - name:%q  ID:%s", "DEBUG", spreadsheet, id)
	}

	s, err := r.sheets.Spreadsheets.Get(id).Fields("spreadsheetId", "sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, classify(err, "failed to fetch spreadsheet %q", spreadsheet)
	}

	sheet, err := getSheet(s, worksheet)
	if err != nil {
		return nil, err
	}

	response, err := r.sheets.Spreadsheets.Values.Get(id, area(sheet.Properties.Title)).Context(ctx).Do()
	if err != nil {
		return nil, classify(err, "unable to retrieve data from worksheet %q", worksheet)
	}

	if r.Debug {
		log.Printf("%-5s worksheet - name:%q  range:%s  rows:%v", "DEBUG", worksheet, response.Range, len(response.Values))
	}

	return makeRecords(response.Values)
}

// lookup resolves a spreadsheet name to the file ID of the most recently modified Google Sheets
// file with that name.
func (r *Reader) lookup(ctx context.Context, name string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escape(name), mimeSpreadsheet)

	files, err := r.drive.Files.List().
		Q(q).
		OrderBy("modifiedTime desc").
		PageSize(1).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Fields("files(id, name, modifiedTime)").
		Context(ctx).
		Do()
	if err != nil {
		return "", classify(err, "unable to search for spreadsheet %q", name)
	}

	if len(files.Files) == 0 {
		return "", fmt.Errorf("%w: spreadsheet %q not found", creator.ErrData, name)
	}

	return files.Files[0].Id, nil
}

func getSheet(spreadsheet *sheets.Spreadsheet, name string) (*sheets.Sheet, error) {
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && strings.EqualFold(strings.TrimSpace(sheet.Properties.Title), strings.TrimSpace(name)) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("%w: unable to identify worksheet '%s'", creator.ErrData, name)
}

// area returns the A1 range for an entire worksheet.
func area(title string) string {
	return fmt.Sprintf("'%s'", strings.ReplaceAll(title, "'", "''"))
}

// escape quotes a string literal for a Drive API query.
func escape(v string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
}

func classify(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
		return fmt.Errorf("%w: %s (%v)", creator.ErrAuthentication, msg, err)
	}

	var tokenErr *oauth2.RetrieveError
	if errors.As(err, &tokenErr) {
		return fmt.Errorf("%w: %s (%v)", creator.ErrAuthentication, msg, err)
	}

	return fmt.Errorf("%s (%v)", msg, err)
}
