package upload

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmind/internal/domain/resume"
)

type fakeGateway struct {
	requests  int
	uploads   int
	uploadErr error
	data      []byte
}

func (f *fakeGateway) RequestUploadURL(_ context.Context, fileName, contentType string) (resume.Target, error) {
	f.requests++
	return resume.Target{UploadURL: "https://bucket/" + fileName, FileKey: "resumes/" + fileName}, nil
}

func (f *fakeGateway) UploadFile(_ context.Context, _ resume.Target, _ string, data []byte) error {
	f.uploads++
	f.data = data
	return f.uploadErr
}

func pdfBytes(size int) []byte {
	data := []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")
	if size > len(data) {
		data = append(data, bytes.Repeat([]byte("0"), size-len(data))...)
	}
	return data
}

func TestSelectRejectsNonPDF(t *testing.T) {
	gw := &fakeGateway{}
	u := New(gw, 0, nil)

	err := u.Select(File{Name: "notes.txt", Data: []byte("plain text resume")})
	assert.ErrorIs(t, err, ErrNotPDF)
	assert.Equal(t, StateError, u.State())
	assert.False(t, u.CanUpload())

	_, err = u.Upload(context.Background())
	assert.ErrorIs(t, err, ErrNoFile)
	assert.Zero(t, gw.requests)
}

func TestSelectRejectsDeclaredMismatch(t *testing.T) {
	u := New(&fakeGateway{}, 0, nil)
	err := u.Select(File{Name: "cv.pdf", Declared: "image/png", Data: pdfBytes(64)})
	assert.ErrorIs(t, err, ErrNotPDF)
	assert.NoError(t, u.Select(File{Name: "cv.pdf", Declared: "application/pdf; charset=binary", Data: pdfBytes(64)}))
}

func TestOversizedPDFRejectedBeforeNetwork(t *testing.T) {
	gw := &fakeGateway{}
	u := New(gw, 0, nil)

	err := u.Select(File{Name: "big.pdf", Declared: "application/pdf", Data: pdfBytes(11 * 1024 * 1024)})
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.False(t, u.CanUpload())
	assert.Zero(t, gw.requests)
	assert.Zero(t, gw.uploads)
}

func TestSelectPathChecksSizeBeforeReading(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.pdf")
	require.NoError(t, os.WriteFile(path, pdfBytes(2048), 0o600))

	u := New(&fakeGateway{}, 1024, nil)
	assert.ErrorIs(t, u.SelectPath(path), ErrTooLarge)
	assert.Equal(t, StateError, u.State())

	u = New(&fakeGateway{}, 4096, nil)
	require.NoError(t, u.SelectPath(path))
	assert.True(t, u.CanUpload())
}

func TestUploadSuccessInvokesCallback(t *testing.T) {
	gw := &fakeGateway{}
	var got resume.Uploaded
	u := New(gw, 0, func(up resume.Uploaded) { got = up })

	data := pdfBytes(512)
	require.NoError(t, u.Select(File{Name: "cv.pdf", Data: data}))
	assert.Equal(t, StateIdle, u.State())

	result, err := u.Upload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "resumes/cv.pdf", result.FileKey)
	assert.Equal(t, result, got)
	assert.Equal(t, StateSuccess, u.State())
	assert.Equal(t, data, gw.data)
	assert.Equal(t, 1, gw.requests)
}

func TestUploadFailureSetsErrorState(t *testing.T) {
	gw := &fakeGateway{uploadErr: errors.New("403 Forbidden")}
	called := false
	u := New(gw, 0, func(resume.Uploaded) { called = true })
	require.NoError(t, u.Select(File{Name: "cv.pdf", Data: pdfBytes(128)}))

	_, err := u.Upload(context.Background())
	assert.EqualError(t, err, "403 Forbidden")
	assert.Equal(t, StateError, u.State())
	assert.EqualError(t, u.Err(), "403 Forbidden")
	assert.False(t, called)
	assert.True(t, u.CanUpload())

	u.Reset()
	assert.Equal(t, StateIdle, u.State())
	assert.False(t, u.CanUpload())
}
