package database

/*
	StaticHost settings database

	Bolt backed key-value store for runtime changeable settings,
	so the hosting state survives a server restart. Values are
	stored as JSON under table (bucket) and key.
*/

import (
	"encoding/json"
	"errors"

	"github.com/boltdb/bolt"
)

type Database struct {
	Db *bolt.DB
}

// NewDatabase opens or creates the settings database at the given path
func NewDatabase(dbfile string) (*Database, error) {
	db, err := bolt.Open(dbfile, 0600, nil)
	if err != nil {
		return nil, err
	}

	return &Database{
		Db: db,
	}, nil
}

// Create a new table
func (d *Database) NewTable(tableName string) error {
	return d.Db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(tableName))
		return err
	})
}

// Check is table exists
func (d *Database) TableExists(tableName string) bool {
	return d.Db.View(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(tableName)) == nil {
			return errors.New("table not exists")
		}
		return nil
	}) == nil
}

// Drop the given table
func (d *Database) DropTable(tableName string) error {
	return d.Db.Update(func(tx *bolt.Tx) error {
		return tx.DeleteBucket([]byte(tableName))
	})
}

/*
	Write to database with given tablename and key. Example Usage:
	err := sysdb.Write("webserv", "port", "8080")
*/
func (d *Database) Write(tableName string, key string, value interface{}) error {
	jsonString, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return d.Db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(tableName))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), jsonString)
	})
}

/*
	Read from database and assign the content to a given datatype.
	The assignee is left untouched if the key does not exist.
*/
func (d *Database) Read(tableName string, key string, assignee interface{}) error {
	return d.Db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tableName))
		if b == nil {
			return errors.New("table not exists")
		}
		v := b.Get([]byte(key))
		if v == nil {
			return errors.New("key not exists")
		}
		return json.Unmarshal(v, assignee)
	})
}

func (d *Database) KeyExists(tableName string, key string) bool {
	exists := false
	d.Db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tableName))
		if b == nil {
			return nil
		}
		exists = b.Get([]byte(key)) != nil
		return nil
	})
	return exists
}

// Delete a value from the database table given tablename and key
func (d *Database) Delete(tableName string, key string) error {
	return d.Db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tableName))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

func (d *Database) Close() {
	d.Db.Close()
}
