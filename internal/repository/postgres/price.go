package postgres

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amanagarwal13/Binanace-Trading/models"
)

// PriceRepository records the market-data snapshots the dashboard serves, so
// a price history survives restarts.
type PriceRepository struct {
	conn *sqlx.DB
}

func NewPriceRepository(conn *sqlx.DB) PriceRepo {
	return &PriceRepository{
		conn: conn,
	}
}

func (r *PriceRepository) Store(m *models.Price) error {
	if _, err := r.conn.NamedExec(
		"INSERT INTO prices (symbol,price,price_change_percent) VALUES (:symbol,:price,:price_change_percent)", m); err != nil {
		return err
	}

	return nil
}

func (r *PriceRepository) GetLast(symbol string) (*models.Price, error) {
	var price models.Price
	if err := r.conn.QueryRowx(
		"SELECT * FROM prices WHERE symbol = $1 ORDER BY id DESC LIMIT 1", symbol).StructScan(&price); err != nil {
		return nil, err
	}

	return &price, nil
}

func (r *PriceRepository) GetByCreatedByInterval(symbol string, sTime, eTime time.Time) ([]models.Price, error) {
	var out []models.Price

	if err := r.conn.Select(&out,
		"SELECT * FROM prices WHERE created_at > $1 AND created_at < $2 AND symbol = $3", sTime.UTC(), eTime.UTC(), symbol); err != nil {
		return nil, err
	}

	return out, nil
}
