package export

import (
	"bytes"
	"fmt"

	"baliance.com/gooxml/document"

	"github.com/jeanpaul/roster/internal/people"
)

// DocumentTitle is the top-level heading of the docx export.
const DocumentTitle = "People Directory"

// Document renders the records as a docx: a title paragraph followed by one
// profile sentence per record, each separated by an empty paragraph,
// insertion order preserved. Returns nil when there are no records.
func (e Exporter) Document(records []people.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, nil
	}

	doc := document.New()

	title := doc.AddParagraph()
	title.SetStyle("Title")
	title.AddRun().AddText(DocumentTitle)

	for _, r := range records {
		p := doc.AddParagraph()
		p.AddRun().AddText(r.Describe())
		doc.AddParagraph() // spacer
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return buf.Bytes(), nil
}
