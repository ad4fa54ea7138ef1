package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designhub/internal/auth"
	"designhub/internal/database"
	"designhub/internal/database/databasetest"
	"designhub/internal/store"
)

func TestCreateCreatorAccount(t *testing.T) {
	ctx := context.Background()
	s := store.New(databasetest.New(t))
	passwords := auth.NewPasswords(true)

	creator, err := createCreatorAccount(ctx, s, passwords, creatorAccount{
		Username: "mia_makes", Email: "mia@test.com", Bio: "Logo specialist",
	}, "s3cret")
	require.NoError(t, err)
	require.NotNil(t, creator)
	assert.Equal(t, 5.0, creator.Rating)

	user, err := s.GetUserByEmail(ctx, "mia@test.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, database.RoleCreator, user.Role)
	assert.Equal(t, "mia_makes", user.Name)
	assert.True(t, passwords.Matches("s3cret", user.Password))

	got, err := s.GetCreator(ctx, creator.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.UserID)
}

func TestCreateCreatorAccountRejects(t *testing.T) {
	ctx := context.Background()
	s := store.New(databasetest.New(t))
	passwords := auth.NewPasswords(false)

	_, err := createCreatorAccount(ctx, s, passwords, creatorAccount{Username: "x"}, "pw")
	require.Error(t, err)

	in := creatorAccount{Username: "dup", Email: "dup@test.com"}
	_, err = createCreatorAccount(ctx, s, passwords, in, "pw")
	require.NoError(t, err)

	_, err = createCreatorAccount(ctx, s, passwords, in, "pw")
	require.Error(t, err)

	creators, err := s.GetCreators(ctx)
	require.NoError(t, err)
	assert.Len(t, creators, 1)
}

func TestGenerateRandomPassword(t *testing.T) {
	a, err := generateRandomPassword(18)
	require.NoError(t, err)
	b, err := generateRandomPassword(0)
	require.NoError(t, err)
	assert.Len(t, a, 24)
	assert.NotEqual(t, a, b)
}
