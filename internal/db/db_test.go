package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestSeedAdminCreatesAccount(t *testing.T) {
	gdb := dbtest.Open(t)

	require.NoError(t, db.SeedAdmin(gdb, "boss@example.com", "s3cret!"))
	require.NoError(t, db.SeedAdmin(gdb, "boss@example.com", "other"))

	var users []models.User
	require.NoError(t, gdb.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.NotEmpty(t, users[0].ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("s3cret!")))
}

func TestSeedAdminPromotesExistingUser(t *testing.T) {
	gdb := dbtest.Open(t)
	require.NoError(t, gdb.Create(&models.User{
		Name: "Ana", Email: "ana@example.com", PasswordHash: "x", Role: models.RoleUser,
	}).Error)

	require.NoError(t, db.SeedAdmin(gdb, "ana@example.com", "whatever"))

	var u models.User
	require.NoError(t, gdb.Where("email = ?", "ana@example.com").First(&u).Error)
	assert.Equal(t, models.RoleAdmin, u.Role)
	assert.Equal(t, "x", u.PasswordHash)
}

func TestSeedAdminSkipsWithoutCredentials(t *testing.T) {
	gdb := dbtest.Open(t)

	require.NoError(t, db.SeedAdmin(gdb, "", ""))

	var n int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&n).Error)
	assert.Zero(t, n)
}
