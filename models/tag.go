package models

type Tag struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"size:50;not null" json:"name"`
	Products []Product `gorm:"many2many:product_tags" json:"products,omitempty"`
}
