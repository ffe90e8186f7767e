// Package invoice builds printable documents for completed sales.
package invoice

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("invoice: sale not found")

// Line is a resolved invoice row. The accessory name is looked up at
// build time so the document survives later catalog changes.
type Line struct {
	Code      string
	Name      string
	Quantity  int
	UnitPrice int64
	Subtotal  int64
}

// Invoice is the renderable document for one sale. Tax is carried as a
// line of its own even while the rate is zero.
type Invoice struct {
	Number   string
	IssuedAt time.Time
	Customer string
	Lines    []Line
	Subtotal int64
	Tax      int64
	Total    int64
}
