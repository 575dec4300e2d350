package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"net/textproto"
	"strings"
)

const (
	boundaryDashes = 26
	boundaryDigits = 24
)

// FileField represents a file to upload in a multipart request.
type FileField struct {
	// FieldName is the form field name (e.g., "file", "image").
	FieldName string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the MIME type. If empty, uses application/octet-stream.
	ContentType string
	// Data is the file content. Used if Reader is nil.
	Data []byte
	// Reader is an alternative to Data for large files.
	Reader io.Reader
}

type formPart struct {
	name  string
	value string
	file  *FileField
}

// FormData accumulates multipart/form-data parts under a fixed boundary.
// The boundary is chosen once at construction so Headers and Encode agree.
type FormData struct {
	boundary string
	parts    []formPart
}

// NewFormData creates an empty form with a fresh random boundary.
func NewFormData() *FormData {
	return &FormData{boundary: newBoundary()}
}

// newBoundary returns 26 dashes followed by 24 random decimal digits.
func newBoundary() string {
	var b strings.Builder
	b.Grow(boundaryDashes + boundaryDigits)
	b.WriteString(strings.Repeat("-", boundaryDashes))
	for range boundaryDigits {
		b.WriteString(fmt.Sprintf("%x", rand.IntN(10)))
	}
	return b.String()
}

// Boundary returns the multipart boundary token.
func (f *FormData) Boundary() string {
	return f.boundary
}

// ContentType returns the Content-Type value for the encoded body.
func (f *FormData) ContentType() string {
	return "multipart/form-data; boundary=" + f.boundary
}

// Headers returns the headers to send with the encoded body.
func (f *FormData) Headers() map[string]string {
	return map[string]string{"content-type": f.ContentType()}
}

// Append adds a plain text field.
func (f *FormData) Append(name, value string) *FormData {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

// AppendFile adds a file field.
func (f *FormData) AppendFile(file FileField) *FormData {
	f.parts = append(f.parts, formPart{name: file.FieldName, file: &file})
	return f
}

// Len returns the number of parts added so far.
func (f *FormData) Len() int {
	return len(f.parts)
}

// Encode renders the parts, in insertion order, as a multipart body.
func (f *FormData) Encode() ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary(f.boundary); err != nil {
		return nil, fmt.Errorf("httpclient: set boundary: %w", err)
	}

	for _, p := range f.parts {
		if p.file == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, err
			}
			continue
		}
		if err := writeFile(w, p.file); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFile(w *multipart.Writer, f *FileField) error {
	var part io.Writer
	var err error

	if f.ContentType != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			`form-data; name="`+escapeQuotes(f.FieldName)+`"; filename="`+escapeQuotes(f.FileName)+`"`)
		header.Set("Content-Type", f.ContentType)
		part, err = w.CreatePart(header)
	} else {
		part, err = w.CreateFormFile(f.FieldName, f.FileName)
	}
	if err != nil {
		return err
	}

	if f.Data != nil {
		_, err = part.Write(f.Data)
		return err
	}
	if f.Reader != nil {
		_, err = io.Copy(part, f.Reader)
		return err
	}
	return nil
}

// escapeQuotes backslash-escapes quotes and backslashes in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
