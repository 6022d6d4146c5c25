package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"showcase/config"
	domainerrors "showcase/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

type part struct {
	field    string
	filename string
	body     []byte
}

func newTestStager(t *testing.T) *Stager {
	t.Helper()

	return NewStager(&config.Config{
		Media: &config.MediaConfig{
			StagingDir:      t.TempDir(),
			MaxImageSize:    1024,
			MaxImageCount:   2,
			MaxDocumentSize: 1024,
		},
	})
}

func newMultipartContext(t *testing.T, values map[string]string, parts ...part) echo.Context {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, p := range parts {
		fw, err := w.CreateFormFile(p.field, p.filename)
		require.NoError(t, err)
		_, err = fw.Write(p.body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestStager_AcceptsSniffedImage(t *testing.T) {
	stager := newTestStager(t)
	c := newMultipartContext(t, map[string]string{"name": "  Pump  "}, part{"images", "pump.PNG", pngHeader})

	batch, err := stager.Begin(c)
	require.NoError(t, err)

	images, err := batch.Images("images")
	require.NoError(t, err)
	require.Len(t, images, 1)

	img := images[0]
	assert.Equal(t, "pump.PNG", img.OriginalName)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, int64(len(pngHeader)), img.Size)
	assert.True(t, strings.HasSuffix(img.Path, ".png"))
	assert.FileExists(t, img.Path)
	assert.Equal(t, "Pump", batch.Value("name"))

	batch.Cleanup()

	_, err = os.Stat(img.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestStager_RejectsDisguisedText(t *testing.T) {
	stager := newTestStager(t)
	c := newMultipartContext(t, nil, part{"images", "photo.jpg", []byte("just some text, not an image")})

	batch, err := stager.Begin(c)
	require.NoError(t, err)
	defer batch.Cleanup()

	_, err = batch.Images("images")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
}

func TestStager_Limits(t *testing.T) {
	t.Run("file too large", func(t *testing.T) {
		stager := newTestStager(t)
		big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 2048)...)
		c := newMultipartContext(t, nil, part{"images", "big.png", big})

		batch, err := stager.Begin(c)
		require.NoError(t, err)
		defer batch.Cleanup()

		_, err = batch.Images("images")
		assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
	})

	t.Run("too many images", func(t *testing.T) {
		stager := newTestStager(t)
		c := newMultipartContext(t, nil,
			part{"images", "a.png", pngHeader},
			part{"images", "b.png", pngHeader},
			part{"images", "c.png", pngHeader},
		)

		batch, err := stager.Begin(c)
		require.NoError(t, err)
		defer batch.Cleanup()

		_, err = batch.Images("images")
		assert.ErrorIs(t, err, domainerrors.ErrTooManyFiles)
	})
}

func TestStager_Document(t *testing.T) {
	stager := newTestStager(t)
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
	c := newMultipartContext(t, nil, part{"catalogFile", "brochure.pdf", pdf})

	batch, err := stager.Begin(c)
	require.NoError(t, err)
	defer batch.Cleanup()

	doc, err := batch.Document("catalog", "catalogFile")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "application/pdf", doc.ContentType)

	missing, err := batch.Image("logo")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStager_URLEncodedForm(t *testing.T) {
	stager := newTestStager(t)
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader("name=Valve&category=Industrial"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	batch, err := stager.Begin(c)
	require.NoError(t, err)
	defer batch.Cleanup()

	assert.Equal(t, "Valve", batch.Value("name"))
	assert.Equal(t, "Industrial", batch.Value("missing", "category"))

	images, err := batch.Images("images")
	require.NoError(t, err)
	assert.Empty(t, images)
}
