package models

import "github.com/google/uuid"

// Inquiry statuses.
const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)

// Inquiry is a customer's "I want this" message about a catalog product. The
// product fields are snapshotted at submission time since the catalog bundle
// can be reloaded with different contents.
type Inquiry struct {
	BaseModel
	ProductID    string     `gorm:"index" json:"product_id"`
	ProductBrand string     `json:"product_brand"`
	ProductName  string     `json:"product_name"`
	CustomerName string     `json:"customer_name"`
	Phone        string     `json:"phone"`
	Message      string     `json:"message"`
	Status       string     `gorm:"index" json:"status"`
	HandledBy    *uuid.UUID `gorm:"type:uuid" json:"handled_by"`
}
