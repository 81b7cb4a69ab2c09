// Package export turns a record snapshot into downloadable document buffers.
// Both exporters are pure transforms: they never touch the store and return
// a nil buffer (and no error) when there is nothing to export.
package export

import (
	"fmt"
	"time"
)

// Standard MIME types for the two OOXML formats, for whatever delivery
// mechanism hands the buffers to the user.
const (
	SpreadsheetMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	DocumentMIME    = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

const timestampLayout = "20060102_150405"

// headers is the fixed column order shared by the spreadsheet export and
// the entry form.
var headers = []string{"First Name", "Last Name", "Age", "Job Title", "City", "State"}

// Exporter carries the cosmetic knobs; the content contract is fixed.
type Exporter struct {
	SheetName      string
	MaxColumnWidth float64
}

// Default returns an exporter with the stock sheet name and width cap.
func Default() Exporter {
	return Exporter{
		SheetName:      "People Data",
		MaxColumnWidth: 50,
	}
}

// SpreadsheetFilename returns the timestamp-qualified download name for an
// xlsx export.
func SpreadsheetFilename(now time.Time) string {
	return fmt.Sprintf("people_data_%s.xlsx", now.Format(timestampLayout))
}

// DocumentFilename returns the timestamp-qualified download name for a
// docx export.
func DocumentFilename(now time.Time) string {
	return fmt.Sprintf("people_profiles_%s.docx", now.Format(timestampLayout))
}
