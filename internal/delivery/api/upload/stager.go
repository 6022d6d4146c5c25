// Package upload stages multipart files on local disk before they are handed
// to the media store.
package upload

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"showcase/config"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/errors"
	"showcase/internal/usecase"
	"showcase/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
)

var imageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// documentTypes lists the catalog formats; the OLE and zip containers are
// what the sniffer reports for some legacy and OOXML office files.
var documentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/x-ole-storage",
	"application/zip",
}

type rule struct {
	maxSize  int64
	maxCount int
	accepted []string
	label    string
}

// Stager copies uploaded files to a staging directory, enforcing size, count
// and sniffed content type.
type Stager struct {
	dir      string
	image    rule
	document rule
}

func NewStager(cfg *config.Config) *Stager {
	media := cfg.Media

	return &Stager{
		dir: media.StagingDir,
		image: rule{
			maxSize:  media.MaxImageSize,
			maxCount: media.MaxImageCount,
			accepted: imageTypes,
			label:    "JPEG, PNG, GIF and WEBP images",
		},
		document: rule{
			maxSize:  media.MaxDocumentSize,
			maxCount: 1,
			accepted: documentTypes,
			label:    "PDF, Word, PowerPoint and Excel files",
		},
	}
}

// Batch tracks the files staged during one request.
type Batch struct {
	stager *Stager
	form   *multipart.Form
	values url.Values
	paths  []string
}

// Begin parses the form of the request. A request that is not multipart has
// no files; its url-encoded fields are still readable through Value.
// The caller must defer Cleanup.
func (s *Stager) Begin(c echo.Context) (*Batch, error) {
	form, err := c.MultipartForm()
	if err == nil {
		return &Batch{stager: s, form: form, values: form.Value}, nil
	}
	if !errors.Is(err, http.ErrNotMultipart) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed multipart form")
	}

	values, err := c.FormParams()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed form body")
	}

	return &Batch{stager: s, values: values}, nil
}

// Value returns the first non-empty form value among fields.
func (b *Batch) Value(fields ...string) string {
	for _, field := range fields {
		if v := b.values[field]; len(v) > 0 && strings.TrimSpace(v[0]) != "" {
			return strings.TrimSpace(v[0])
		}
	}

	return ""
}

// Images stages the files of the first populated field among fields.
func (b *Batch) Images(fields ...string) ([]*usecase.UploadedFile, error) {
	return b.stageAll(b.stager.image, fields)
}

// Image stages a single image, or returns nil when none was sent.
func (b *Batch) Image(fields ...string) (*usecase.UploadedFile, error) {
	return b.stageOne(b.stager.image, fields)
}

// Document stages a single catalog document, or returns nil when none was sent.
func (b *Batch) Document(fields ...string) (*usecase.UploadedFile, error) {
	return b.stageOne(b.stager.document, fields)
}

// Cleanup removes every staged file.
func (b *Batch) Cleanup() {
	for _, p := range b.paths {
		_ = os.Remove(p)
	}
	b.paths = nil
}

func (b *Batch) headers(fields []string) []*multipart.FileHeader {
	if b.form == nil {
		return nil
	}
	for _, field := range fields {
		if fhs := b.form.File[field]; len(fhs) > 0 {
			return fhs
		}
	}

	return nil
}

func (b *Batch) stageOne(r rule, fields []string) (*usecase.UploadedFile, error) {
	r.maxCount = 1
	files, err := b.stageAll(r, fields)
	if err != nil || len(files) == 0 {
		return nil, err
	}

	return files[0], nil
}

func (b *Batch) stageAll(r rule, fields []string) ([]*usecase.UploadedFile, error) {
	fhs := b.headers(fields)
	if len(fhs) > r.maxCount {
		return nil, domainerrors.ErrTooManyFiles.WithDetails("at most " + strconv.Itoa(r.maxCount) + " files are allowed")
	}

	files := make([]*usecase.UploadedFile, 0, len(fhs))
	for _, fh := range fhs {
		file, err := b.stage(r, fh)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func (b *Batch) stage(r rule, fh *multipart.FileHeader) (*usecase.UploadedFile, error) {
	if fh.Size > r.maxSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(fh.Filename + " exceeds " + util.FormatBytes(r.maxSize))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload %s", fh.Filename)
	}
	defer src.Close()

	dst, err := os.CreateTemp(b.stager.dir, "upload-*"+strings.ToLower(filepath.Ext(fh.Filename)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create staging file")
	}
	b.paths = append(b.paths, dst.Name())

	size, err := io.Copy(dst, io.LimitReader(src, r.maxSize+1))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stage upload %s", fh.Filename)
	}
	if size > r.maxSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(fh.Filename + " exceeds " + util.FormatBytes(r.maxSize))
	}

	mtype, err := mimetype.DetectFile(dst.Name())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to detect type of %s", fh.Filename)
	}
	if !mimetype.EqualsAny(mtype.String(), r.accepted...) {
		return nil, domainerrors.ErrInvalidFileType.WithDetails("only " + r.label + " are allowed")
	}

	return &usecase.UploadedFile{
		Path:         dst.Name(),
		OriginalName: filepath.Base(fh.Filename),
		ContentType:  mtype.String(),
		Size:         size,
	}, nil
}
