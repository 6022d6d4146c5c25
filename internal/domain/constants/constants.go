package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Media store folders, one per owning record type
const (
	FolderProducts = "products"
	FolderServices = "services"
	FolderPartners = "partners"
	FolderCatalogs = "catalogs"
	FolderCompany  = "company"
)

// Multipart field names accepted by upload endpoints
const (
	FieldImages      = "images"
	FieldCatalogFile = "catalogFile"
	FieldCatalog     = "catalog"
	FieldLogo        = "logo"
)

// TopLimit is the number of records returned by the "top" listings
const TopLimit = 3
