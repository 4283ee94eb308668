package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindCollaborator:  http.StatusInternalServerError,
		KindDecode:        http.StatusBadRequest,
		KindConfigMissing: http.StatusInternalServerError,
		KindAuth:          http.StatusInternalServerError,
		KindTransport:     http.StatusInternalServerError,
		KindUnclassified:  http.StatusInternalServerError,
		KindBadRequest:    http.StatusBadRequest,
	}
	for kind, status := range cases {
		assert.Equal(t, status, kind.HTTPStatus(), kind.String())
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := Wrap(KindCollaborator, "Error generating summary", cause)

	assert.Equal(t, "Error generating summary: quota exceeded", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindCollaborator, KindOf(fmt.Errorf("outer: %w", err)))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindUnclassified, KindOf(errors.New("boom")))
	assert.False(t, Is(nil, KindUnclassified))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"decode", New(KindDecode, "Error reading file: bad bytes"), http.StatusBadRequest, "Error reading file: bad bytes"},
		{"auth", New(KindAuth, "Email authentication failed"), http.StatusInternalServerError, "Email authentication failed"},
		{"plain", errors.New("unexpected"), http.StatusInternalServerError, "unexpected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.True(t, c.IsAborted())

			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body.Detail)
		})
	}
}
