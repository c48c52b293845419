package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is a line item captured at order time. Price and category are
// snapshots as of purchase, not live joins against the current catalog.
// Price is kept as a string because legacy checkout wrote it that way;
// the analytics reducer parses it leniently (malformed -> 0).
type CartItem struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type CartItemsList []CartItem

// PriceValue parses the snapshot price the same way the checkout did: the
// leading decimal prefix is read, so "100", "100.50" and "100 INR" all parse
// while "abc" or "" yield 0. This is the single lenient parser; invoices and
// analytics both use it, so their totals always agree for the same order.
func (i CartItem) PriceValue() float64 {
	s := strings.TrimSpace(i.Price)
	end := 0
	seenDot := false
	for idx, r := range s {
		if r == '-' && idx == 0 {
			end = idx + 1
			continue
		}
		if r == '.' && !seenDot {
			seenDot = true
			end = idx + 1
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		end = idx + 1
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// Order is immutable once created. Date is stored as the raw string the
// checkout produced; unparseable dates are excluded from time-window metrics
// rather than treated as errors.
type Order struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string        `json:"email" gorm:"type:varchar(255);not null;index"`
	Date      string        `json:"date" gorm:"type:varchar(64)"`
	CartItems CartItemsList `json:"cartItems" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime;index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (l *CartItemsList) Scan(value interface{}) error {
	if value == nil {
		*l = make(CartItemsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CartItemsList")
	}
	return json.Unmarshal(bytes, l)
}

func (l CartItemsList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]CartItem{})
	}
	return json.Marshal(l)
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// CreateOrderRequest for checkout. The order email is taken from the
// authenticated user's claims, never from the body; an email field sent by
// older clients is accepted but ignored.
type CreateOrderRequest struct {
	Email     string     `json:"email" binding:"omitempty,email"`
	Date      string     `json:"date"`
	CartItems []CartItem `json:"cartItems" binding:"required,min=1"`
}
