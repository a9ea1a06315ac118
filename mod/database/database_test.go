package database_test

import (
	"path/filepath"
	"testing"

	"statichost/mod/database"

	"github.com/stretchr/testify/assert"
)

func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(db.Close)
	return db
}

func TestWriteReadRoundtrip(t *testing.T) {
	db := newTestDatabase(t)

	err := db.Write("webserv", "port", "8080")
	assert.NoError(t, err)

	port := ""
	err = db.Read("webserv", "port", &port)
	assert.NoError(t, err)
	assert.Equal(t, "8080", port)

	enabled := false
	err = db.Write("webserv", "enabled", true)
	assert.NoError(t, err)
	err = db.Read("webserv", "enabled", &enabled)
	assert.NoError(t, err)
	assert.True(t, enabled)
}

func TestReadMissingKeyLeavesAssigneeUntouched(t *testing.T) {
	db := newTestDatabase(t)
	db.NewTable("webserv")

	port := "8080"
	err := db.Read("webserv", "port", &port)
	assert.Error(t, err)
	assert.Equal(t, "8080", port)

	//Table that was never created behaves the same
	err = db.Read("notexists", "port", &port)
	assert.Error(t, err)
	assert.Equal(t, "8080", port)
}

func TestKeyExistsAndDelete(t *testing.T) {
	db := newTestDatabase(t)

	assert.False(t, db.KeyExists("webserv", "dirlist"))
	db.Write("webserv", "dirlist", true)
	assert.True(t, db.KeyExists("webserv", "dirlist"))

	err := db.Delete("webserv", "dirlist")
	assert.NoError(t, err)
	assert.False(t, db.KeyExists("webserv", "dirlist"))
}

func TestTableLifecycle(t *testing.T) {
	db := newTestDatabase(t)

	assert.False(t, db.TableExists("settings"))
	assert.NoError(t, db.NewTable("settings"))
	assert.True(t, db.TableExists("settings"))
	assert.NoError(t, db.DropTable("settings"))
	assert.False(t, db.TableExists("settings"))
}
