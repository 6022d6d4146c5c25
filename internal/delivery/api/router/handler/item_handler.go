package handler

import (
	"log/slog"
	"net/http"

	"showcase/internal/delivery/api/response"
	"showcase/internal/delivery/api/upload"
	"showcase/internal/domain/constants"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItemHandler serves the product and service routes, which share one shape.
type ItemHandler struct {
	itemUC usecase.ItemUsecase
	stager *upload.Stager
	label  string
	logger *slog.Logger
}

type ProductHandler struct {
	*ItemHandler
}

type ServiceHandler struct {
	*ItemHandler
}

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Stager    *upload.Stager
	Logger    *slog.Logger
}

// ServiceHandlerParams holds dependencies for ServiceHandler, injected by Fx.
type ServiceHandlerParams struct {
	fx.In

	ServiceUC usecase.ServiceUsecase
	Stager    *upload.Stager
	Logger    *slog.Logger
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{newItemHandler(params.ProductUC, params.Stager, "product", params.Logger)}
}

func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{newItemHandler(params.ServiceUC, params.Stager, "service", params.Logger)}
}

func newItemHandler(uc usecase.ItemUsecase, stager *upload.Stager, label string, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{itemUC: uc, stager: stager, label: label, logger: logger}
}

// List supports ?keyword= and ?category= filters.
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.itemUC.List(c.Request().Context(), usecase.ItemQuery{
		Keyword:  c.QueryParam("keyword"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemViews(items))
}

func (h *ItemHandler) Top(c echo.Context) error {
	items, err := h.itemUC.Top(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemViews(items))
}

func (h *ItemHandler) Categories(c echo.Context) error {
	categories, err := h.itemUC.Categories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

func (h *ItemHandler) ByCategory(c echo.Context) error {
	items, err := h.itemUC.List(c.Request().Context(), usecase.ItemQuery{Category: c.Param("category")})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemViews(items))
}

func (h *ItemHandler) WithCatalogs(c echo.Context) error {
	items, err := h.itemUC.WithCatalogs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemViews(items))
}

func (h *ItemHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, h.label)
	}

	item, err := h.itemUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemView(item))
}

func (h *ItemHandler) GetCatalog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, h.label)
	}

	catalog, err := h.itemUC.GetCatalog(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCatalogView(catalog))
}

// DownloadCatalog redirects to the stored document.
func (h *ItemHandler) DownloadCatalog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, h.label)
	}

	catalog, err := h.itemUC.GetCatalog(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, catalog.URL)
}

// Create reads a multipart form with the text fields, images[] and an optional catalogFile.
func (h *ItemHandler) Create(c echo.Context) error {
	batch, err := h.stager.Begin(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer batch.Cleanup()

	images, err := batch.Images(constants.FieldImages)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	catalog, err := batch.Document(constants.FieldCatalogFile, constants.FieldCatalog)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.itemUC.Create(c.Request().Context(), itemInputFrom(batch), images, catalog)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newItemMutationView(out))
}

// Update keeps fields left empty, appends new images and replaces the catalog when one is sent.
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, h.label)
	}

	batch, err := h.stager.Begin(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer batch.Cleanup()

	images, err := batch.Images(constants.FieldImages)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	catalog, err := batch.Document(constants.FieldCatalogFile, constants.FieldCatalog)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.itemUC.Update(c.Request().Context(), id, itemInputFrom(batch), images, catalog)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemMutationView(out))
}

func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, h.label)
	}

	if err := h.itemUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Deleted successfully")
}

func (h *ItemHandler) AddImages(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, h.label)
	}

	batch, err := h.stager.Begin(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer batch.Cleanup()

	images, err := batch.Images(constants.FieldImages)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.itemUC.AddImages(c.Request().Context(), id, images)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemMutationView(out))
}

func (h *ItemHandler) RemoveImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, h.label)
	}
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		return invalidID(c, "image")
	}

	item, err := h.itemUC.RemoveImage(c.Request().Context(), id, imageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemView(item))
}

func (h *ItemHandler) SetMainImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, h.label)
	}
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		return invalidID(c, "image")
	}

	item, err := h.itemUC.SetMainImage(c.Request().Context(), id, imageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemView(item))
}

// UploadCatalog accepts the document under "catalog" or "catalogFile".
func (h *ItemHandler) UploadCatalog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, h.label)
	}

	batch, err := h.stager.Begin(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer batch.Cleanup()

	catalog, err := batch.Document(constants.FieldCatalog, constants.FieldCatalogFile)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.itemUC.UploadCatalog(c.Request().Context(), id, catalog)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemView(item))
}

func (h *ItemHandler) DeleteCatalog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, h.label)
	}

	item, err := h.itemUC.DeleteCatalog(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemView(item))
}

func itemInputFrom(batch *upload.Batch) *usecase.ItemInput {
	return &usecase.ItemInput{
		Name:                 batch.Value("name"),
		LocalizedName:        batch.Value("nameAr"),
		Description:          batch.Value("description"),
		LocalizedDescription: batch.Value("descriptionAr"),
		Category:             batch.Value("category"),
	}
}
