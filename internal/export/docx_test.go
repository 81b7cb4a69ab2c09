package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"baliance.com/gooxml/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/roster/internal/people"
)

func TestDocumentEmptyStore(t *testing.T) {
	buf, err := Default().Document(nil)
	require.NoError(t, err)
	assert.Nil(t, buf, "empty store must produce no buffer")
}

func TestDocumentContents(t *testing.T) {
	buf, err := Default().Document(sampleRecords(t))
	require.NoError(t, err)
	require.NotEmpty(t, buf)
	assert.True(t, bytes.HasPrefix(buf, []byte("PK")), "docx is a zip container")

	doc, err := document.Read(bytes.NewReader(buf), int64(len(buf)))
	require.NoError(t, err)

	var texts []string
	for _, p := range doc.Paragraphs() {
		var sb strings.Builder
		for _, r := range p.Runs() {
			sb.WriteString(r.Text())
		}
		if s := sb.String(); s != "" {
			texts = append(texts, s)
		}
	}

	require.Len(t, texts, 4, "title plus one sentence per record")
	assert.Equal(t, "People Directory", texts[0])
	assert.Equal(t, "Ada Lovelace, 36 years old, works as a Mathematician and lives in London, England.", texts[1])
	assert.Equal(t, "Grace Hopper, 45 years old, works as a Rear Admiral and lives in Arlington, VA.", texts[2])
	assert.Equal(t, "Alan Turing, 41 years old, works as a Cryptanalyst and lives in Wilmslow, England.", texts[3])
}

func TestDocumentSingleRecordSentence(t *testing.T) {
	r, err := people.New("Ada", "Lovelace", 36, "Mathematician", "London", "England")
	require.NoError(t, err)

	buf, err := Default().Document([]people.Record{r})
	require.NoError(t, err)
	require.NotEmpty(t, buf)
}

func TestExportFilenames(t *testing.T) {
	ts := time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "people_data_20260829_143005.xlsx", SpreadsheetFilename(ts))
	assert.Equal(t, "people_profiles_20260829_143005.docx", DocumentFilename(ts))
}
