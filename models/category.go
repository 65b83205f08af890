package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"size:50;not null" json:"name"`
	Products []Product `gorm:"many2many:product_categories" json:"products,omitempty"`
}
