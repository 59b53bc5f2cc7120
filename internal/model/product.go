package model

import "time"

type ProductCategory string

const (
	CategoryDrinks      ProductCategory = "drinks"
	CategoryDesserts    ProductCategory = "desserts"
	CategoryCups        ProductCategory = "cups"
	CategoryCones       ProductCategory = "cones"
	CategoryIngredients ProductCategory = "ingredients"
	CategoryBucket      ProductCategory = "bucket"
	CategoryThriftyPack ProductCategory = "thrifty_pack"
)

// ProductCategories lists every valid category token, in declaration order.
// Validation error messages enumerate this set.
func ProductCategories() []string {
	return []string{
		string(CategoryDrinks),
		string(CategoryDesserts),
		string(CategoryCups),
		string(CategoryCones),
		string(CategoryIngredients),
		string(CategoryBucket),
		string(CategoryThriftyPack),
	}
}

func (c ProductCategory) Valid() bool {
	for _, v := range ProductCategories() {
		if string(c) == v {
			return true
		}
	}
	return false
}

// Product is a sellable/trackable item belonging to exactly one branch.
// A product with at least one log cannot be deleted.
type Product struct {
	BaseModel
	ProductName     string          `gorm:"type:varchar(100);not null" json:"productName" validate:"required,max=100"`
	Description     string          `gorm:"type:varchar(500)" json:"description" validate:"max=500"`
	Category        ProductCategory `gorm:"type:varchar(20);not null" json:"category" validate:"required,category"`
	InitialQuantity int             `gorm:"not null" json:"initialQuantity" validate:"gte=0"`
	Price           float64         `gorm:"type:decimal(10,2);not null" json:"price" validate:"gte=0"`
	Cost            float64         `gorm:"type:decimal(10,2);not null" json:"cost" validate:"gte=0"`
	ImageSrc        string          `gorm:"type:varchar(1000)" json:"imageSrc" validate:"max=1000"`
	AddedAt         time.Time       `gorm:"not null" json:"addedAt" validate:"-"`
	BranchID        uint            `gorm:"index;not null" json:"branchId" validate:"required"`

	// Relations
	Branch *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty" validate:"-"`
	Logs   []Log   `gorm:"foreignKey:ProductID" json:"logs,omitempty" validate:"-"`
}
