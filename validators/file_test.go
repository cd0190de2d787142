package validators

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFileHeader(t *testing.T, name string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	h.Set("Content-Type", "application/pdf")

	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)

	return form.File["file"][0]
}

func TestFileValidatorAcceptsPDF(t *testing.T) {
	viper.Set("upload.max_size", int64(25<<20))

	fh := buildFileHeader(t, "notes.pdf", []byte("%PDF-1.4\nhello\n%%EOF\n"))

	code, f, err := FileValidator(fh)
	require.NoError(t, err)
	assert.Zero(t, code)

	f.Close()
}

func TestFileValidatorSniffsSpoofedContent(t *testing.T) {
	viper.Set("upload.max_size", int64(25<<20))

	// Content-Type header claims PDF but the bytes don't
	fh := buildFileHeader(t, "notes.pdf", []byte("MZ definitely not a pdf"))

	code, _, err := FileValidator(fh)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.ErrorIs(t, err, ErrFileTypeUnsupported)
}

// A header that can't be opened is an internal failure and must keep
// its cause instead of being reported as an unsupported file type
func TestFileValidatorInternalErrorKeepsCause(t *testing.T) {
	viper.Set("upload.max_size", int64(25<<20))

	// No backing content or tmpfile, so Open fails
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", "application/pdf")
	fh := &multipart.FileHeader{Filename: "notes.pdf", Size: 1, Header: h}

	code, _, err := FileValidator(fh)
	assert.Equal(t, http.StatusInternalServerError, code)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFileTypeUnsupported)
}
