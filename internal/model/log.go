package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Quantity is a signed stock delta. Clients send it either as a JSON number
// or as a string-encoded integer; both decode to the same value.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("quantityOfChange must be an integer, got %s", data)
	}
	*q = Quantity(n)
	return nil
}

type LogReason string

const (
	ReasonEstetic   LogReason = "estetic"
	ReasonNotUsable LogReason = "not_usable"
	ReasonSale      LogReason = "sale"
	ReasonPurchase  LogReason = "purchase"
	ReasonRefund    LogReason = "refund"
)

// LogReasons lists every valid reason token, in declaration order.
func LogReasons() []string {
	return []string{
		string(ReasonEstetic),
		string(ReasonNotUsable),
		string(ReasonSale),
		string(ReasonPurchase),
		string(ReasonRefund),
	}
}

func (r LogReason) Valid() bool {
	for _, v := range LogReasons() {
		if string(r) == v {
			return true
		}
	}
	return false
}

// Log is an immutable audit record of a quantity change to a product,
// attributed to a user and a reason. Logs are never updated or deleted
// through the API; they block deletion of their product and user.
type Log struct {
	BaseModel
	ProductID        uint      `gorm:"index;not null" json:"productId" validate:"required"`
	QuantityOfChange int       `gorm:"not null" json:"quantityOfChange"`
	MovedAt          time.Time `gorm:"not null" json:"movedAt" validate:"-"`
	UserID           uint      `gorm:"index;not null" json:"userId" validate:"required"`
	Reason           LogReason `gorm:"type:varchar(20);not null" json:"reason" validate:"required,log_reason"`

	// Relations
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
}
