package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConstraintErrors(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "users_username_key"}
	fk := &pq.Error{Code: "23503", Constraint: "ads_category_id_fkey"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert user: %w", unique)))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("boom")))

	assert.Equal(t, "ads_category_id_fkey", ConstraintName(fmt.Errorf("wrap: %w", fk)))
	assert.Equal(t, "", ConstraintName(errors.New("boom")))
}
