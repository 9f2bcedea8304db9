//go:build !sqlite

package database

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/params"
)

const (
	boltBucketConfig   = "config"   // key: "config" -> Config JSON
	boltBucketSessions = "sessions" // key: server URL -> sealed session bytes

	boltConfigKey = "config"
)

type Bolt struct {
	db *bbolt.DB
}

func initDB() (Store, error) {
	return newBoltStore(filepath.Join(params.AppdataDir, "linkr.bolt"))
}

func newBoltStore(path string) (Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketConfig)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketSessions)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) GetConfig() (*model.Config, error) {
	var data []byte

	if err := b.db.View(func(tx *bbolt.Tx) error {
		data = tx.Bucket([]byte(boltBucketConfig)).Get([]byte(boltConfigKey))

		return nil
	}); err != nil {
		return nil, err
	}

	if data == nil {
		cfg := model.DefaultConfig()

		return &cfg, nil
	}

	var cfg model.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketConfig)).Put([]byte(boltConfigKey), data)
	})
}

func (b *Bolt) SaveSession(serverURL string, sealed []byte) error {
	if serverURL == "" {
		return errors.New("server URL is required")
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSessions)).Put([]byte(serverURL), sealed)
	})
}

func (b *Bolt) GetSession(serverURL string) ([]byte, error) {
	var data []byte

	if err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketSessions)).Get([]byte(serverURL))
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return data, nil
}

func (b *Bolt) DeleteSession(serverURL string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSessions)).Delete([]byte(serverURL))
	})
}
