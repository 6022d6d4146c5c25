package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"showcase/config"
	"showcase/internal/delivery/api/upload"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	mockUC "showcase/internal/mocks/usecase"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProductHandler(t *testing.T) (*ProductHandler, *mockUC.MockItemUsecase) {
	t.Helper()

	uc := mockUC.NewMockItemUsecase(t)
	stager := upload.NewStager(&config.Config{
		Media: &config.MediaConfig{
			StagingDir:      t.TempDir(),
			MaxImageSize:    1 << 20,
			MaxImageCount:   10,
			MaxDocumentSize: 1 << 20,
		},
	})

	return NewProductHandler(ProductHandlerParams{ProductUC: uc, Stager: stager, Logger: slog.Default()}), uc
}

func TestItemHandler_Get(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		h, uc := newTestProductHandler(t)
		uc.EXPECT().Get(mock.Anything, id).Return(&entity.Item{
			ID:   id,
			Name: "Pump",
			Images: []entity.AssetReference{
				{ID: uuid.New(), URL: "https://cdn/x.png", IsMain: true},
			},
			CreatedAt: time.Now(),
		}, nil)

		c, rec := newTestContext(http.MethodGet, "/", nil, "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var view ItemView
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
		assert.Equal(t, "Pump", view.Name)
		require.Len(t, view.Images, 1)
		assert.True(t, view.Images[0].IsMain)
		assert.Nil(t, view.Catalog)
	})

	t.Run("not found", func(t *testing.T) {
		h, uc := newTestProductHandler(t)
		uc.EXPECT().Get(mock.Anything, id).Return(nil, domainerrors.ErrProductNotFound)

		c, rec := newTestContext(http.MethodGet, "/", nil, "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := newTestProductHandler(t)

		c, rec := newTestContext(http.MethodGet, "/", nil, "")
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidID, decodeEnvelope(t, rec).Error.Code)
	})
}

func TestItemHandler_List_PassesFilters(t *testing.T) {
	h, uc := newTestProductHandler(t)
	uc.EXPECT().List(mock.Anything, usecase.ItemQuery{Keyword: "pump", Category: "Industrial"}).
		Return([]*entity.Item{}, nil)

	c, rec := newTestContext(http.MethodGet, "/?keyword=pump&category=Industrial", nil, "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", string(decodeEnvelope(t, rec).Data))
}

func TestItemHandler_Create(t *testing.T) {
	h, uc := newTestProductHandler(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("name", "Pump"))
	require.NoError(t, w.WriteField("description", "Centrifugal pump"))
	require.NoError(t, w.WriteField("nameAr", "مضخة"))
	fw, err := w.CreateFormFile("images", "pump.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	itemID := uuid.New()
	uc.EXPECT().
		Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, input *usecase.ItemInput, images []*usecase.UploadedFile, catalog *usecase.UploadedFile) (*usecase.ItemMutationOutput, error) {
			assert.Equal(t, "Pump", input.Name)
			assert.Equal(t, "مضخة", input.LocalizedName)
			require.Len(t, images, 1)
			assert.FileExists(t, images[0].Path)
			assert.Nil(t, catalog)

			return &usecase.ItemMutationOutput{
				Item:          &entity.Item{ID: itemID, Name: input.Name},
				FailedUploads: []usecase.FileFailure{{FileName: "other.png", Reason: "timeout"}},
			}, nil
		})

	c, rec := newTestContext(http.MethodPost, "/", &body, w.FormDataContentType())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var view ItemMutationView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.Equal(t, itemID, view.ID)
	require.Len(t, view.FailedUploads, 1)
	assert.Equal(t, "other.png", view.FailedUploads[0].FileName)
}

func TestItemHandler_Create_RejectsNonImage(t *testing.T) {
	h, _ := newTestProductHandler(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("name", "Pump"))
	fw, err := w.CreateFormFile("images", "pump.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("plain text pretending to be a picture"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	c, rec := newTestContext(http.MethodPost, "/", &body, w.FormDataContentType())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_FILE_TYPE", decodeEnvelope(t, rec).Error.Code)
}

func TestItemHandler_DownloadCatalog_Redirects(t *testing.T) {
	h, uc := newTestProductHandler(t)
	id := uuid.New()
	uc.EXPECT().GetCatalog(mock.Anything, id).Return(&entity.CatalogAsset{AssetReference: entity.AssetReference{URL: "https://cdn/catalog.pdf"}}, nil)

	c, rec := newTestContext(http.MethodGet, "/", nil, "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.DownloadCatalog(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://cdn/catalog.pdf", rec.Header().Get("Location"))
}

func TestItemHandler_SetMainImage(t *testing.T) {
	h, uc := newTestProductHandler(t)
	id, imageID := uuid.New(), uuid.New()
	uc.EXPECT().SetMainImage(mock.Anything, id, imageID).Return(nil, domainerrors.ErrImageNotFound)

	c, rec := newTestContext(http.MethodPut, "/", nil, "")
	c.SetParamNames("id", "imageId")
	c.SetParamValues(id.String(), imageID.String())

	require.NoError(t, h.SetMainImage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "IMAGE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}
