package user_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/userapi/modules/user"
	"github.com/dmitrymomot/userapi/pkg/validator"
)

func TestUser_JSONOmitsUnsetFields(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(user.User{Name: "Ann", Email: "a@b.c"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ann","email":"a@b.c"}`, string(b))
}

func TestUser_JSONShape(t *testing.T) {
	t.Parallel()

	id, err := bson.ObjectIDFromHex("65a1b2c3d4e5f60718293a4b")
	require.NoError(t, err)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	b, err := json.Marshal(user.User{ID: &id, Name: "Ann", Email: "a@b.c", CreatedAt: &ts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"65a1b2c3d4e5f60718293a4b","name":"Ann","email":"a@b.c","created_at":"2024-01-02T03:04:05Z"}`, string(b))
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, user.CreateUserRequest{Name: "Ann", Email: "not-an-email"}.Validate())

	err := user.CreateUserRequest{Name: " ", Email: ""}.Validate()
	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"name", "email"}, ve.Fields())

	err = user.CreateUserRequest{Name: strings.Repeat("a", 257), Email: "a@b.c"}.Validate()
	require.ErrorAs(t, err, &ve)
	assert.True(t, ve.Has("name"))
}

func TestParseID(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "abc", "65a1b2c3d4e5f60718293a4", "65a1b2c3d4e5f60718293a4g", "65a1b2c3d4e5f60718293a4b0"} {
		_, err := user.ParseID(id)
		assert.ErrorIs(t, err, user.ErrInvalidID, id)
	}

	oid, err := user.ParseID("65a1b2c3d4e5f60718293a4b")
	require.NoError(t, err)
	assert.Equal(t, "65a1b2c3d4e5f60718293a4b", oid.Hex())
}

func TestStorageError(t *testing.T) {
	t.Parallel()

	cause := assert.AnError
	err := error(&user.StorageError{Op: "find users", Err: cause})
	assert.ErrorIs(t, err, user.ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, user.ErrNotFound)
	assert.Equal(t, "find users: "+cause.Error(), err.Error())
}
