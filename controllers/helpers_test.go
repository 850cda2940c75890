package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		return c, w
	}

	t.Run("returns the parsed ID", func(t *testing.T) {
		id := uuid.New()
		c, _ := newCtx()
		c.Set("userId", id.String())

		got, ok := currentUserID(c)
		require.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("missing claim is unauthorized", func(t *testing.T) {
		c, w := newCtx()

		_, ok := currentUserID(c)
		require.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-string claim is unauthorized, not a panic", func(t *testing.T) {
		// A validly-signed token may still carry a numeric sub claim.
		c, w := newCtx()
		c.Set("userId", 12345)

		_, ok := currentUserID(c)
		require.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed ID string is unauthorized", func(t *testing.T) {
		c, w := newCtx()
		c.Set("userId", "not-a-uuid")

		_, ok := currentUserID(c)
		require.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
