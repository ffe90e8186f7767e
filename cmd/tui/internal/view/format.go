package view

import (
	"context"
	"time"

	"github.com/Santiagox01/VeterinariaFinal/internal/money"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats a price stored as cents into a display string.
func FormatAmount(cents int64) string {
	return money.Format(cents)
}

// FormatDate formats a time.Time into DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
