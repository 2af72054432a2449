package models

import "encoding/json"

// Device categories as selected in the editor's admin form.
const (
	CategoryClimate     = "Клімат"
	CategorySecurity    = "Безпека"
	CategoryElectricity = "Електрика"
	CategoryCameras     = "Камери"
	CategoryControl     = "Керування"
)

// DefaultCatalogFile receives devices with an unknown or missing category.
const DefaultCatalogFile = "devices.json"

// CatalogFiles maps a device category to its catalog file name.
var CatalogFiles = map[string]string{
	CategoryClimate:     "climate.json",
	CategorySecurity:    "security.json",
	CategoryElectricity: "electricity.json",
	CategoryCameras:     "cameras.json",
	CategoryControl:     "control.json",
}

// CatalogFileFor returns the catalog file name for a category.
func CatalogFileFor(category string) string {
	if name, ok := CatalogFiles[category]; ok {
		return name
	}
	return DefaultCatalogFile
}

// DeviceRecord is the typed view of the fields a catalog entry must carry.
// The entry itself is stored verbatim.
type DeviceRecord struct {
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
}

// Catalog is the on-disk shape of a category catalog
type Catalog struct {
	Library []json.RawMessage `json:"library"`
}
