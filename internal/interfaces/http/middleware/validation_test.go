package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"nombre" binding:"required,max=5"`
	Email string `json:"correo" binding:"required,email"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req sampleRequest
	return c.ShouldBindJSON(&req)
}

func TestFormatValidationErrors(t *testing.T) {
	SetupValidator()

	err := bindSample(t, `{"nombre":"toolongname","correo":"nope"}`)
	require.Error(t, err)

	resp, ok := FormatValidationErrors(err, "req-1")
	require.True(t, ok)
	assert.False(t, resp.Success)
	assert.Equal(t, "req-1", resp.Error.RequestID)

	fields := map[string]string{}
	for _, d := range resp.Error.Details {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "Must be at most 5 characters", fields["nombre"])
	assert.Equal(t, "Invalid email format", fields["correo"])
}

func TestFormatValidationErrors_RequiredField(t *testing.T) {
	SetupValidator()

	err := bindSample(t, `{"correo":"ana@example.com"}`)
	resp, ok := FormatValidationErrors(err, "")

	require.True(t, ok)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "nombre", resp.Error.Details[0].Field)
	assert.Equal(t, "This field is required", resp.Error.Details[0].Message)
}

func TestFormatValidationErrors_NotAValidationError(t *testing.T) {
	err := bindSample(t, `{not json`)

	_, ok := FormatValidationErrors(err, "")
	assert.False(t, ok)
}
