package services

import (
	"testing"
	"time"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("  Buyer@Example.COM ", "secret123", " Ada ", "Lovelace", "0812345678")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", user.Email)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret123", user.Password)

	// email ซ้ำ
	_, err = svc.Register("buyer@example.com", "another", "B", "C", "")
	assert.ErrorIs(t, err, ErrEmailTaken)

	token, logged, err := svc.Login("buyer@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)

	_, _, err = svc.Login("buyer@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("vendor@example.com", "secret123", "V", "Endor", "")
	require.NoError(t, err)

	require.NoError(t, db.Model(&entity.User{}).
		Where("id = ?", user.ID).
		Update("is_active", false).Error)

	_, _, err = svc.Login("vendor@example.com", "secret123")
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("p@example.com", "secret123", "Old", "Name", "")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, map[string]any{
		"first_name": "New",
		"address":    "2 Wilkinson Rd",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.FirstName)
	assert.Equal(t, "2 Wilkinson Rd", updated.Address)
	assert.Equal(t, "Name", updated.LastName)
}
