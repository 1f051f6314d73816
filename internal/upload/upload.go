package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"matchmind/internal/domain/resume"
	"matchmind/internal/platform/config"
)

var (
	ErrNotPDF   = errors.New("only PDF files can be uploaded")
	ErrTooLarge = errors.New("file exceeds the upload size limit")
	ErrNoFile   = errors.New("no file selected")
	ErrInFlight = errors.New("upload already in progress")
)

type State string

const (
	StateIdle      State = "idle"
	StateUploading State = "uploading"
	StateSuccess   State = "success"
	StateError     State = "error"
)

type Gateway interface {
	RequestUploadURL(ctx context.Context, fileName, contentType string) (resume.Target, error)
	UploadFile(ctx context.Context, target resume.Target, contentType string, data []byte) error
}

type File struct {
	Name     string
	Declared string
	Data     []byte
}

// Uploader runs the two-step resume upload: request a presigned target, then
// PUT the file to it. Files are checked before any network call.
type Uploader struct {
	mu        sync.Mutex
	gateway   Gateway
	maxBytes  int64
	onSuccess func(resume.Uploaded)

	state State
	file  *File
	err   error
	last  resume.Uploaded
}

func New(gateway Gateway, maxBytes int64, onSuccess func(resume.Uploaded)) *Uploader {
	if maxBytes <= 0 {
		maxBytes = config.DefaultResumeMaxBytes
	}
	return &Uploader{gateway: gateway, maxBytes: maxBytes, onSuccess: onSuccess, state: StateIdle}
}

// Check applies the size and type rules to a candidate file.
func Check(name, declared string, data []byte, maxBytes int64) error {
	if len(data) == 0 {
		return ErrNoFile
	}
	if int64(len(data)) > maxBytes {
		return fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, name, len(data), maxBytes)
	}
	if declared != "" && !strings.EqualFold(strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]), resume.ContentTypePDF) {
		return fmt.Errorf("%w: declared %s", ErrNotPDF, declared)
	}
	if detected := mimetype.Detect(data); !detected.Is(resume.ContentTypePDF) {
		return fmt.Errorf("%w: detected %s", ErrNotPDF, detected.String())
	}
	return nil
}

func (u *Uploader) Select(file File) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state == StateUploading {
		return ErrInFlight
	}
	if err := Check(file.Name, file.Declared, file.Data, u.maxBytes); err != nil {
		u.file = nil
		u.state = StateError
		u.err = err
		return err
	}
	u.file = &file
	u.state = StateIdle
	u.err = nil
	return nil
}

// SelectPath stats the file first so oversize files are never read.
func (u *Uploader) SelectPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	if info.Size() > u.maxBytes {
		err := fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, name, info.Size(), u.maxBytes)
		u.fail(err)
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return u.Select(File{Name: name, Data: data})
}

func (u *Uploader) fail(err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.file = nil
	u.state = StateError
	u.err = err
}

// CanUpload reports whether a valid file is selected and nothing is in flight.
func (u *Uploader) CanUpload() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.file != nil && u.state != StateUploading
}

func (u *Uploader) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *Uploader) Err() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.err
}

func (u *Uploader) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.file = nil
	u.state = StateIdle
	u.err = nil
	u.last = resume.Uploaded{}
}

func (u *Uploader) Upload(ctx context.Context) (resume.Uploaded, error) {
	u.mu.Lock()
	if u.file == nil {
		u.mu.Unlock()
		return resume.Uploaded{}, ErrNoFile
	}
	if u.state == StateUploading {
		u.mu.Unlock()
		return resume.Uploaded{}, ErrInFlight
	}
	file := *u.file
	u.state = StateUploading
	u.err = nil
	u.mu.Unlock()

	result, err := u.send(ctx, file)

	u.mu.Lock()
	if err != nil {
		u.state = StateError
		u.err = err
		u.mu.Unlock()
		return resume.Uploaded{}, err
	}
	u.state = StateSuccess
	u.last = result
	u.file = nil
	callback := u.onSuccess
	u.mu.Unlock()

	if callback != nil {
		callback(result)
	}
	return result, nil
}

func (u *Uploader) send(ctx context.Context, file File) (resume.Uploaded, error) {
	target, err := u.gateway.RequestUploadURL(ctx, file.Name, resume.ContentTypePDF)
	if err != nil {
		return resume.Uploaded{}, err
	}
	if err := u.gateway.UploadFile(ctx, target, resume.ContentTypePDF, file.Data); err != nil {
		return resume.Uploaded{}, err
	}
	return resume.Uploaded{FileKey: target.FileKey, FileName: file.Name, Size: int64(len(file.Data))}, nil
}
