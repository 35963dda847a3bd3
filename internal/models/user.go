package models

// AdminUser is a back-office account allowed to reload the catalog bundle and
// review inquiries. Customers never authenticate; browsing is anonymous.
type AdminUser struct {
	BaseModel
	Phone        string `gorm:"uniqueIndex" json:"phone"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"-"`
}
