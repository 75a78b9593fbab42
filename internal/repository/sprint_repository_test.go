package repository

import (
	"errors"
	"testing"

	"doable-go/internal/models"
	"doable-go/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintCreateUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	sprintRepo := NewSprintRepository(db)
	userRepo := NewUserRepository(db)

	user := &models.User{Username: strPtr("runner"), Email: "runner@example.com", Password: "x"}
	require.NoError(t, userRepo.Create(user))

	sprint := &models.Sprint{Name: "第一迭代", UserID: user.ID}
	require.NoError(t, sprintRepo.Create(sprint))

	fresh, err := sprintRepo.GetByID(sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Status)
	assert.JSONEq(t, "{}", string(fresh.Data))
	require.NotNil(t, fresh.User.Username)
	assert.Equal(t, "runner", *fresh.User.Username)

	updated, err := sprintRepo.Update(sprint.ID, map[string]interface{}{
		"status": float64(2),
		"data":   map[string]interface{}{"goal": "发布"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Status)
	assert.JSONEq(t, `{"goal":"发布"}`, string(updated.Data))
	assert.Equal(t, "第一迭代", updated.Name)

	require.NoError(t, sprintRepo.Delete(sprint.ID))

	err = sprintRepo.Delete(sprint.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestSprintUpdateEmptyPatch(t *testing.T) {
	sprintRepo := NewSprintRepository(newTestDB(t))

	_, err := sprintRepo.Update(1, map[string]interface{}{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidRequest))
}
