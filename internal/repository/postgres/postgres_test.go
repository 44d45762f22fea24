package postgres_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"

	"github.com/amanagarwal13/Binanace-Trading/internal/repository/postgres"
	"github.com/amanagarwal13/Binanace-Trading/models"
)

func initPGTest(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("postgres", "host=localhost user=binance password=binance dbname=binance sslmode=disable")
	if err != nil {
		t.Skipf("postgres is not reachable: %v", err)
	}

	return db
}

func Test_PriceStore(t *testing.T) {
	c := initPGTest(t)
	pgStore := postgres.NewPriceRepository(c)

	symbol := "BTCUSDT"

	t.Run("Store", func(t *testing.T) {
		err := pgStore.Store(&models.Price{
			Symbol:             symbol,
			Price:              27123.5,
			PriceChangePercent: 2.15,
		})
		assert.NoError(t, err)
	})

	t.Run("GetLast", func(t *testing.T) {
		p, err := pgStore.GetLast(symbol)
		require.NoError(t, err)

		assert.Equal(t, symbol, p.Symbol)
		assert.Equal(t, 27123.5, p.Price)

		t.Logf("%+v", p)
	})

	t.Run("GetByCreatedByInterval", func(t *testing.T) {
		out, err := pgStore.GetByCreatedByInterval(symbol, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
		require.NoError(t, err)

		assert.NotEmpty(t, out)
	})
}
