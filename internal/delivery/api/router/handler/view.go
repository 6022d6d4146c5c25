package handler

import (
	"time"

	"showcase/internal/domain/entity"
	"showcase/internal/usecase"

	"github.com/google/uuid"
)

// Views are the JSON shapes served to the site front end.

type AssetView struct {
	ID       uuid.UUID `json:"id"`
	URL      string    `json:"url"`
	PublicID string    `json:"publicId,omitempty"`
	Alt      string    `json:"alt,omitempty"`
	IsMain   bool      `json:"isMain"`
}

func newAssetView(ref entity.AssetReference) AssetView {
	return AssetView{
		ID:       ref.ID,
		URL:      ref.URL,
		PublicID: ref.DeletionHandle,
		Alt:      ref.DisplayMetadata,
		IsMain:   ref.IsMain,
	}
}

type CatalogView struct {
	URL        string    `json:"url"`
	PublicID   string    `json:"publicId,omitempty"`
	FileType   string    `json:"fileType"`
	FileName   string    `json:"fileName"`
	UploadDate time.Time `json:"uploadDate"`
}

func newCatalogView(catalog *entity.CatalogAsset) *CatalogView {
	if catalog == nil {
		return nil
	}

	return &CatalogView{
		URL:        catalog.URL,
		PublicID:   catalog.DeletionHandle,
		FileType:   string(catalog.FileKind),
		FileName:   catalog.OriginalFileName,
		UploadDate: catalog.UploadedAt,
	}
}

type ItemView struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	NameAr        string       `json:"nameAr,omitempty"`
	Description   string       `json:"description"`
	DescriptionAr string       `json:"descriptionAr,omitempty"`
	Category      string       `json:"category,omitempty"`
	Images        []AssetView  `json:"images"`
	Catalog       *CatalogView `json:"catalog"`
	HasCatalog    bool         `json:"hasCatalog"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func newItemView(item *entity.Item) ItemView {
	images := make([]AssetView, 0, len(item.Images))
	for _, img := range item.Images {
		images = append(images, newAssetView(img))
	}

	return ItemView{
		ID:            item.ID,
		Name:          item.Name,
		NameAr:        item.LocalizedName,
		Description:   item.Description,
		DescriptionAr: item.LocalizedDescription,
		Category:      item.Category,
		Images:        images,
		Catalog:       newCatalogView(item.Catalog),
		HasCatalog:    item.HasCatalog,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func newItemViews(items []*entity.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newItemView(item))
	}

	return views
}

// ItemMutationView adds the per-file upload failures of a batch.
type ItemMutationView struct {
	ItemView
	FailedUploads []usecase.FileFailure `json:"failedUploads,omitempty"`
}

func newItemMutationView(out *usecase.ItemMutationOutput) ItemMutationView {
	return ItemMutationView{
		ItemView:      newItemView(out.Item),
		FailedUploads: out.FailedUploads,
	}
}

type PartnerView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NameAr      string    `json:"nameAr,omitempty"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Logo        AssetView `json:"logo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newPartnerView(p *entity.Partner) PartnerView {
	return PartnerView{
		ID:          p.ID,
		Name:        p.Name,
		NameAr:      p.LocalizedName,
		Description: p.Description,
		Website:     p.Website,
		Logo:        newAssetView(p.Logo),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type CompanyInfoView struct {
	ID            uuid.UUID             `json:"id"`
	Logo          *AssetView            `json:"logo"`
	Address       entity.CompanyAddress `json:"address"`
	Phone         entity.CompanyPhone   `json:"phone"`
	Email         entity.CompanyEmail   `json:"email"`
	BusinessHours entity.BusinessHours  `json:"businessHours"`
	SocialMedia   entity.SocialMedia    `json:"socialMedia"`
	ThemeColor    string                `json:"themeColor,omitempty"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

func newCompanyInfoView(info *entity.CompanyInfo) CompanyInfoView {
	view := CompanyInfoView{
		ID:            info.ID,
		Address:       info.Address,
		Phone:         info.Phone,
		Email:         info.Email,
		BusinessHours: info.BusinessHours,
		SocialMedia:   info.SocialMedia,
		ThemeColor:    info.ThemeColor,
		UpdatedAt:     info.UpdatedAt,
	}
	if info.Logo != nil {
		logo := newAssetView(*info.Logo)
		view.Logo = &logo
	}

	return view
}

type ContactView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func newContactView(c *entity.Contact) ContactView {
	return ContactView{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		IsRead:    c.IsRead,
		CreatedAt: c.CreatedAt,
	}
}

type UserView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin"`
}

func newUserView(u *entity.User) UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}
