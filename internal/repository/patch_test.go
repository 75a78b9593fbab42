package repository

import (
	"errors"
	"testing"
	"time"

	"doable-go/internal/models"
	"doable-go/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPatchFields = map[string]patchField{
	"name":     {column: "name", transform: asIs},
	"status":   {column: "status", transform: asInt},
	"data":     {column: "data", transform: asJSON},
	"password": {column: "password", transform: asPassword},
	"due_date": {column: "due_date", transform: asTime},
}

func TestBuildUpdatesEmptyPatch(t *testing.T) {
	_, err := BuildUpdates(map[string]interface{}{}, testPatchFields)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidRequest))
}

func TestBuildUpdatesUnknownKey(t *testing.T) {
	_, err := BuildUpdates(map[string]interface{}{"bogus": 1}, testPatchFields)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidRequest))
}

func TestBuildUpdatesStampsUpdatedAt(t *testing.T) {
	updates, err := BuildUpdates(map[string]interface{}{"name": "x"}, testPatchFields)
	require.NoError(t, err)

	assert.Equal(t, "x", updates["name"])
	assert.Contains(t, updates, "updated_at")
}

func TestBuildUpdatesZeroAndEmptyAreValid(t *testing.T) {
	// 空字符串和0是合法更新值,只有缺失的键才被跳过
	updates, err := BuildUpdates(map[string]interface{}{
		"name":   "",
		"status": float64(0),
	}, testPatchFields)
	require.NoError(t, err)

	assert.Equal(t, "", updates["name"])
	assert.Equal(t, int64(0), updates["status"])
}

func TestBuildUpdatesSerializesJSONFields(t *testing.T) {
	updates, err := BuildUpdates(map[string]interface{}{
		"data": []interface{}{"a", "b"},
	}, testPatchFields)
	require.NoError(t, err)

	assert.Equal(t, models.JSONValue(`["a","b"]`), updates["data"])
}

func TestBuildUpdatesHashesPassword(t *testing.T) {
	updates, err := BuildUpdates(map[string]interface{}{"password": "secret"}, testPatchFields)
	require.NoError(t, err)

	hashed, ok := updates["password"].(string)
	require.True(t, ok)
	assert.NotEqual(t, "secret", hashed)
	assert.NoError(t, utils.CheckPassword("secret", hashed))
}

func TestBuildUpdatesParsesTime(t *testing.T) {
	updates, err := BuildUpdates(map[string]interface{}{
		"due_date": "2026-02-01T10:00:00Z",
	}, testPatchFields)
	require.NoError(t, err)

	due, ok := updates["due_date"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2026, due.Year())

	// 显式null表示清空
	updates, err = BuildUpdates(map[string]interface{}{"due_date": nil}, testPatchFields)
	require.NoError(t, err)
	assert.Nil(t, updates["due_date"])

	_, err = BuildUpdates(map[string]interface{}{"due_date": "第二天"}, testPatchFields)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidRequest))
}
