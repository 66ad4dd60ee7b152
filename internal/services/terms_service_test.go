package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermsCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTermsService(db)

	created, err := svc.Create("You agree to the house rules.", "1.0")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "You agree to the house rules.", got.Content)
	assert.Equal(t, "1.0", got.Version)

	updated, err := svc.Update(created.ID, "Revised rules.", "1.1")
	require.NoError(t, err)
	assert.Equal(t, "Revised rules.", updated.Content)
	assert.Equal(t, "1.1", updated.Version)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(created.ID))

	list, err = svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTermsNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTermsService(db)

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrTermsNotFound)

	_, err = svc.Update(uuid.New(), "x", "1")
	assert.ErrorIs(t, err, ErrTermsNotFound)

	assert.ErrorIs(t, svc.Delete(uuid.New()), ErrTermsNotFound)
}
