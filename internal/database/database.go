package database

import (
	"sync"

	"github.com/inovacc/linkr/internal/model"
)

// Store defines the local persistence operations used by the app.
type Store interface {
	Ping() error
	GetConfig() (*model.Config, error)
	SaveConfig(cfg *model.Config) error
	SaveSession(serverURL string, sealed []byte) error
	GetSession(serverURL string) ([]byte, error)
	DeleteSession(serverURL string) error
}

var (
	once sync.Once
	db   Store
)

// GetDB returns the initialized store, opening it on first use.
func GetDB() Store {
	once.Do(func() {
		var err error

		db, err = initDB()
		if err != nil {
			panic(err)
		}
	})

	return db
}
