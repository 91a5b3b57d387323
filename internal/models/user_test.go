package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserDefaults(t *testing.T) {
	u := NewUser("octocat", "octo@example.com", "s3cret")

	assert.Equal(t, "octocat", u.Username)
	assert.Equal(t, []Role{RoleViewer}, u.Roles)
	assert.Equal(t, DefaultURLCreationLimit, u.URLCreationLimit)
	assert.Zero(t, u.URLCreatedCount)
	assert.False(t, u.PremiumAccount)
	assert.False(t, u.AccountLocked)
	assert.False(t, u.CreatedAt.IsZero())
	assert.True(t, u.UpdatedAt.IsZero())
}

func TestHasRole(t *testing.T) {
	u := NewUser("octocat", "octo@example.com", "s3cret")
	assert.True(t, u.HasRole(RoleViewer))
	assert.False(t, u.HasRole(RoleAdmin))

	u.Roles = append(u.Roles, RoleAdmin)
	assert.True(t, u.HasRole(RoleAdmin))
}

func TestPasswordNeverSerialized(t *testing.T) {
	u := NewUser("octocat", "octo@example.com", "s3cret")

	b, err := json.Marshal(u)
	assert.NoError(t, err)
	assert.NotContains(t, string(b), "s3cret")
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "updatedAt")
	assert.NotContains(t, string(b), "lastLoginAt")
}

func TestRoleValues(t *testing.T) {
	assert.Equal(t, "VIEWER", RoleViewer.String())
	assert.Equal(t, "EDITOR", RoleEditor.String())
	assert.Equal(t, "ADMIN", RoleAdmin.String())
}
