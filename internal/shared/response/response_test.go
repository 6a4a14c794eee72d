package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leave-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, PaginationMeta{Total: 101, TotalPages: 3, Page: 2, PageSize: 50}, NewPaginationMeta(101, 2, 50))
	assert.Equal(t, 0, NewPaginationMeta(10, 1, 0).TotalPages)
}

func TestAppError_WritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AppError(c, apperror.New(apperror.CodeInvalidState, "leave request is no longer pending", http.StatusConflict))

	require.Equal(t, http.StatusConflict, w.Code)
	var env struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, apperror.CodeInvalidState, env.Error.Code)
}

func TestSuccessWithWarnings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessWithWarnings(c, http.StatusOK, map[string]int{"id": 1}, []string{"payroll skipped"})

	assert.JSONEq(t, `{"ok":true,"data":{"id":1},"warnings":["payroll skipped"]}`, w.Body.String())
}
