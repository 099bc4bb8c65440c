package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_favorites_user_recipe"})
	foreignKey := &pgconn.PgError{Code: pgForeignKeyViolation}
	check := &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "ck_follows_not_self"}
	notNull := &pgconn.PgError{Code: pgNotNullViolation}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.Equal(t, "uq_favorites_user_recipe", pgConstraintName(unique))
	assert.False(t, isUniqueConstraintViolation(foreignKey))

	assert.True(t, isForeignKeyConstraintViolation(foreignKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(fmt.Errorf("plain")))
	assert.Empty(t, pgConstraintName(fmt.Errorf("plain")))
}
