package models

// Gender audience values used across the catalog. The data level knows only
// the three concrete audiences; "all" exists solely as a filter selection.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// Product is a single record from the static catalog bundle. Products are
// loaded once per session and never mutated afterwards.
type Product struct {
	ID         string   `json:"id"`
	Brand      string   `json:"brand"`
	Name       string   `json:"name"`
	RawName    string   `json:"raw_name"`
	Size       *string  `json:"size"`
	Type       *string  `json:"type"`
	Gender     string   `json:"gender"`
	Price      *float64 `json:"price"`
	IsGiftSet  bool     `json:"is_gift_set"`
	IsTester   bool     `json:"is_tester"`
	Image      string   `json:"image"`
	HoverImage string   `json:"hover_image,omitempty"`
}

// Brand is a pre-aggregated brand entry from the bundle: the display name and
// how many products carry it. Counts come with the bundle and are not
// recomputed by the filtering core.
type Brand struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
