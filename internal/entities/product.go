package entities

import "time"

// Product is a menu item. Only the fields checkout needs are modeled here;
// order items snapshot PriceCents at purchase time.
type Product struct {
	ID         string
	SiteID     string
	Name       string
	PriceCents int64
	Available  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
