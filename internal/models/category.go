package models

// Category is a question category. Its questions are looked up by value
// through Question.Category; there is no stored association.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:255;not null" json:"type"`
}
