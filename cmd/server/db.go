package main

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// initDB connects the optional price-history store. The server runs
// without it when no PG_* config is present.
func (a *App) initDB() error {
	if a.Config.DB == nil {
		return nil
	}

	db, err := sqlx.Connect("postgres", a.Config.DB.DSN())
	if err != nil {
		return err
	}

	a.DB = db

	return nil
}
