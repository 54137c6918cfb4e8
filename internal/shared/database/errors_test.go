package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, IsForeignKeyViolation(errors.New("no such table")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(errors.New("other")))
}

type widget struct {
	ID   int    `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex;not null"`
}

func TestOpenSQLiteMigratesAndTranslatesErrors(t *testing.T) {
	db, err := OpenSQLite("file::memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.RunMigrations(&widget{}))
	require.NoError(t, db.Create(&widget{Code: "x"}).Error)
	require.NoError(t, db.Ping(context.Background()))

	err = db.Create(&widget{Code: "x"}).Error
	assert.True(t, IsUniqueViolation(err), "got %v", err)
}
