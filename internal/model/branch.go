package model

// Branch is a physical retail location. It owns products; a branch with at
// least one product cannot be deleted.
type Branch struct {
	BaseModel
	BranchName string    `gorm:"type:varchar(100);not null" json:"branchName" validate:"required,max=100"`
	Address    string    `gorm:"type:varchar(255);not null" json:"address" validate:"required,max=255"`
	Products   []Product `gorm:"foreignKey:BranchID" json:"products,omitempty" validate:"-"`
}
