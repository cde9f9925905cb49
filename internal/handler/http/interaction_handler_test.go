package http_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
	handler "github.com/mikiasgoitom/Catalog/internal/handler/http"
	mocks "github.com/mikiasgoitom/Catalog/internal/handler/http/mocks"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/logger"
)

const testProductID = "11111111-1111-1111-1111-111111111111"

func setupInteractionRouter(m *mocks.MockReactionUsecase) *gin.Engine {
	h := handler.NewInteractionHandler(m, time.Second, logger.NewNop())
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "mock-user-id") })
	r.POST("/products/:id/like", h.ReactToProductHandler)
	return r
}

func TestReactToProduct_Created(t *testing.T) {
	m := mocks.NewMockReactionUsecase()
	r := setupInteractionRouter(m)

	w := postJSON(r, "/products/"+testProductID+"/like", map[string]string{"type": "LIKE"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Reaction created"`)
	assert.Contains(t, w.Body.String(), `"currentType":"LIKE"`)
	assert.Contains(t, w.Body.String(), `"likes":1`)
	assert.Contains(t, w.Body.String(), `"dislikes":0`)
	assert.Equal(t, "mock-user-id", m.LastUserID)
	assert.Equal(t, testProductID, m.LastProductID)
}

func TestReactToProduct_RemovedHasNullType(t *testing.T) {
	m := mocks.NewMockReactionUsecase()
	m.Result = entity.ToggleResult{Status: entity.ToggleStatusRemoved, Counts: entity.ReactionCounts{}}
	r := setupInteractionRouter(m)

	w := postJSON(r, "/products/"+testProductID+"/like", map[string]string{"type": "LIKE"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Reaction removed")
	assert.Contains(t, w.Body.String(), `"currentType":null`)
}

func TestReactToProduct_InvalidType(t *testing.T) {
	for _, body := range []string{
		`{"type":"like"}`, `{"type":"LOVE"}`, `{}`, `not json`,
		`{"type":" LIKE"}`, `{"type":"DISLIKE\n"}`, `{"type":"\tLIKE "}`,
	} {
		t.Run(body, func(t *testing.T) {
			m := mocks.NewMockReactionUsecase()
			r := setupInteractionRouter(m)

			w := postRaw(r, "/products/"+testProductID+"/like", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Invalid type. Must be LIKE or DISLIKE.")
			assert.Equal(t, 0, m.Calls)
		})
	}
}

func TestReactToProduct_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{fmt.Errorf("toggle: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "Request timed out"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "Server error"},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			m := mocks.NewMockReactionUsecase()
			m.Err = tc.err
			r := setupInteractionRouter(m)

			w := postJSON(r, "/products/"+testProductID+"/like", map[string]string{"type": "DISLIKE"})

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.msg)
			assert.NotContains(t, w.Body.String(), "disk on fire")
		})
	}
}

func TestReactToProduct_MalformedProductID(t *testing.T) {
	m := mocks.NewMockReactionUsecase()
	r := setupInteractionRouter(m)

	w := postJSON(r, "/products/not-a-uuid/like", map[string]string{"type": "LIKE"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, m.Calls)
}
