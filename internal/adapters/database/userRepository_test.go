package database_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	dbadapter "photofeed/internal/adapters/database"
	"photofeed/internal/core/integrity"
	"photofeed/internal/core/post"
	"photofeed/internal/core/user"
	"photofeed/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUser(username, email string) *user.User {
	return &user.User{
		Username:  username,
		FirstName: "First",
		LastName:  "Last",
		Email:     email,
		Password:  "opaque",
		IsActive:  true,
	}
}

func createUser(t *testing.T, db *gorm.DB, username string) *user.User {
	t.Helper()
	u, err := dbadapter.NewUserRepositoryDatabase(db).Create(context.Background(), newUser(username, username+"@x.com"))
	require.NoError(t, err)
	return u
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := testutils.SetupDB(t)
	repo := dbadapter.NewUserRepositoryDatabase(db)
	ctx := context.Background()

	u, err := repo.Create(ctx, newUser("alice", "a@x.com"))
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.True(t, byID.IsActive)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, u.ID+100)
	assert.ErrorIs(t, err, integrity.ErrNotFound)
}

func TestUserRepository_UniqueUsernameAndEmail(t *testing.T) {
	db := testutils.SetupDB(t)
	repo := dbadapter.NewUserRepositoryDatabase(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("alice", "a@x.com"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		user  *user.User
		field string
	}{
		{name: "same username", user: newUser("alice", "other@x.com"), field: "username"},
		{name: "same email", user: newUser("alice2", "a@x.com"), field: "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tt.user)
			require.ErrorIs(t, err, integrity.ErrUniqueness)

			var uv *integrity.UniquenessViolation
			require.True(t, errors.As(err, &uv))
			assert.Equal(t, "user", uv.Entity)
			assert.Equal(t, tt.field, uv.Field)
		})
	}

	var count int64
	require.NoError(t, db.Model(&user.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserRepository_ColumnConstraints(t *testing.T) {
	db := testutils.SetupDB(t)
	repo := dbadapter.NewUserRepositoryDatabase(db)

	tooLong := newUser(strings.Repeat("a", 81), "a@x.com")
	noEmail := newUser("bob", "")
	noPassword := newUser("carol", "c@x.com")
	noPassword.Password = ""
	longEmail := newUser("dave", strings.Repeat("e", 115)+"@x.com")

	tests := []struct {
		name  string
		user  *user.User
		field string
		rule  string
	}{
		{"username over 80", tooLong, "username", "max"},
		{"missing email", noEmail, "email", "required"},
		{"missing password", noPassword, "password", "required"},
		{"email over 120", longEmail, "email", "max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(context.Background(), tt.user)
			require.ErrorIs(t, err, integrity.ErrValidation)

			var ve *integrity.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.rule, ve.Rule)
		})
	}

	// exactly 80 characters fits
	_, err := repo.Create(context.Background(), newUser(strings.Repeat("a", 80), "ok@x.com"))
	assert.NoError(t, err)
}

func TestUserRepository_UpdateKeepsUniqueness(t *testing.T) {
	db := testutils.SetupDB(t)
	repo := dbadapter.NewUserRepositoryDatabase(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	alice.FirstName = "Alicia"
	alice.IsActive = false
	_, err := repo.Update(ctx, alice)
	require.NoError(t, err)

	reloaded, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", reloaded.FirstName)
	assert.False(t, reloaded.IsActive)

	alice.Email = bob.Email
	_, err = repo.Update(ctx, alice)
	assert.ErrorIs(t, err, integrity.ErrUniqueness)

	ghost := newUser("ghost", "g@x.com")
	ghost.ID = 999
	_, err = repo.Update(ctx, ghost)
	assert.ErrorIs(t, err, integrity.ErrNotFound)
}

func TestUserRepository_DeleteIsRestricted(t *testing.T) {
	db := testutils.SetupDB(t)
	users := dbadapter.NewUserRepositoryDatabase(db)
	posts := dbadapter.NewPostRepositoryDatabase(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	p, err := posts.Create(ctx, &post.Post{UserID: alice.ID})
	require.NoError(t, err)

	err = users.Delete(ctx, alice.ID)
	require.ErrorIs(t, err, integrity.ErrForeignKey)
	var fk *integrity.ForeignKeyViolation
	require.True(t, errors.As(err, &fk))
	assert.True(t, fk.Restrict)
	assert.Equal(t, "post", fk.Entity)
	assert.Equal(t, "user_id", fk.Field)

	require.NoError(t, posts.Delete(ctx, p.ID))
	require.NoError(t, users.Delete(ctx, alice.ID))

	assert.ErrorIs(t, users.Delete(ctx, alice.ID), integrity.ErrNotFound)
}

func TestUserRepository_CreateIgnoresCallerID(t *testing.T) {
	db := testutils.SetupDB(t)
	repo := dbadapter.NewUserRepositoryDatabase(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")

	stale := newUser("bob", "b@x.com")
	stale.ID = alice.ID
	bob, err := repo.Create(ctx, stale)
	require.NoError(t, err)
	assert.NotEqual(t, alice.ID, bob.ID)

	reloaded, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", reloaded.Username)
}
