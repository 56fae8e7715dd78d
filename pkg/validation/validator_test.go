package validation

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name     string `form:"name" binding:"required,alphanum,max=20"`
	Email    string `form:"email" binding:"required,email,max=20"`
	Password string `form:"password" binding:"required,alphanum,max=20"`
}

func bindForm(t *testing.T, values url.Values) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	ctx.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var form signupForm
	return ctx.ShouldBind(&form)
}

func TestFailedFieldsUsesFormTagNames(t *testing.T) {
	Init()

	err := bindForm(t, url.Values{
		"name":     {"alice"},
		"email":    {"not-an-email"},
		"password": {"pw 12345"}, // space breaks alphanum
	})
	require.Error(t, err)

	fields := FailedFields(err)
	assert.ElementsMatch(t, []string{"email", "password"}, fields)
}

func TestFailedFieldsAllMissing(t *testing.T) {
	Init()

	err := bindForm(t, url.Values{})
	require.Error(t, err)

	assert.ElementsMatch(t, []string{"name", "email", "password"}, FailedFields(err))
}

func TestFailedFieldsValidInput(t *testing.T) {
	Init()

	err := bindForm(t, url.Values{
		"name":     {"alice"},
		"email":    {"a@b.com"},
		"password": {"pw12345"},
	})
	require.NoError(t, err)
	assert.Nil(t, FailedFields(err))
}

func TestEmailMaxTwentyQuirk(t *testing.T) {
	Init()

	// 21-char address that is otherwise perfectly valid.
	err := bindForm(t, url.Values{
		"name":     {"alice"},
		"email":    {"alice.johnson@bcz.com"},
		"password": {"pw12345"},
	})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"email"}, FailedFields(err))
}

func TestToDetailsMessages(t *testing.T) {
	Init()

	err := bindForm(t, url.Values{
		"name":  {"alice"},
		"email": {"a@b.com"},
	})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["password"])
}

func TestToDetailsNilOnSuccess(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
