package product

import "time"

type ProductDB struct {
	ID         string
	SiteID     string
	Name       string
	PriceCents int64
	Available  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
