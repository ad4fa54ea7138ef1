package schema

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsFirstMissingField(t *testing.T) {
	err := Validate(InsertOrder{UserID: 1})
	require.Error(t, err)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "designId", fe.Field)
	assert.Equal(t, "designId is required", fe.Message)
}

func TestValidateAcceptsMinimalOrder(t *testing.T) {
	assert.NoError(t, Validate(InsertOrder{DesignID: 1, UserID: 2}))
}

func TestValidateUserRole(t *testing.T) {
	in := InsertUser{Username: "bob", Email: "bob@x.com", Password: "pw", Name: "Bob"}
	assert.NoError(t, Validate(in))

	in.Role = "admin"
	err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, "role must be one of: customer, creator", err.Error())
}

func TestValidateReviewRatingRange(t *testing.T) {
	in := InsertReview{DesignID: 1, UserID: 1, UserName: "Bob", Rating: 6, Comment: "great"}
	err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, "rating must be at most 5", err.Error())
}

func TestValidateLoginEmail(t *testing.T) {
	err := Validate(Login{Email: "not-an-email", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address", err.Error())
}

func TestDescribeJSONErrors(t *testing.T) {
	var order InsertOrder
	err := json.Unmarshal([]byte(`{"designId":"abc","userId":1}`), &order)
	require.Error(t, err)

	fe := Describe(err)
	assert.Equal(t, "designId", fe.Field)
	assert.Equal(t, "designId must be an integer", fe.Message)

	err = json.Unmarshal([]byte(`{"designId":1,"referenceImages":"x"}`), &order)
	assert.Equal(t, "referenceImages must be an array", Describe(err).Message)

	err = json.Unmarshal([]byte(`{"designId":`), &order)
	require.Error(t, err)
	assert.NotEmpty(t, Describe(err).Message)

	assert.Equal(t, "request body is required", Describe(io.EOF).Message)
	assert.Nil(t, Describe(nil))
}
