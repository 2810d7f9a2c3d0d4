package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "nevoyage/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestPaginatedShape(t *testing.T) {
	c, rec := newContext()

	err := Paginated(c, []string{"a", "b"}, 25, 2, 10)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items      []string   `json:"items"`
			Pagination Pagination `json:"pagination"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data.Items, 2)
	assert.Equal(t, int64(25), body.Data.Pagination.Total)
	assert.Equal(t, 2, body.Data.Pagination.Page)
	assert.Equal(t, 10, body.Data.Pagination.Limit)
	assert.Equal(t, 3, body.Data.Pagination.Pages)
}

func TestPaginatedEmptyReportsZeroPages(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, Paginated(c, []string{}, 0, 1, 20))

	var body struct {
		Data struct {
			Pagination Pagination `json:"pagination"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Data.Pagination.Pages)
}

func TestErrorMapsAppError(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, Error(c, apperrors.NotFound("Listing", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "Listing not found")
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, Error(c, assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
