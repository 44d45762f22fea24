package models

import "time"

type Price struct {
	ID                 int       `db:"id"`
	Symbol             string    `db:"symbol"`
	Price              float64   `db:"price"`
	PriceChangePercent float64   `db:"price_change_percent"`
	CreatedAt          time.Time `db:"created_at"`
}
