package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/energyservice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationTestItem struct {
	ProductID int64 `json:"product_id" binding:"required,min=1"`
}

type validationTestRequest struct {
	VatID   string               `json:"vat_id" binding:"omitempty,de_vat"`
	ZipCode string               `json:"zip_code" binding:"required,zip5"`
	Email   string               `json:"email" binding:"omitempty,email"`
	Items   []validationTestItem `json:"items" binding:"omitempty,dive"`
}

type validationErrorBody struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Error   struct {
		Code    string                 `json:"code"`
		Details []dto.ValidationDetail `json:"details"`
	} `json:"error"`
}

func validationRouter() *gin.Engine {
	SetupValidator()

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req validationTestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetupValidator(t *testing.T) {
	SetupValidator()
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type sample struct {
		Vat string `json:"vat" binding:"de_vat"`
		Zip string `json:"zip" binding:"zip5"`
	}
	assert.NoError(t, v.Struct(sample{Vat: "DE123456789", Zip: "86650"}))
	assert.Error(t, v.Struct(sample{Vat: "DE12345678", Zip: "86650"}))
	assert.Error(t, v.Struct(sample{Vat: "DE123456789", Zip: "8665a"}))
}

func TestHandleValidationError(t *testing.T) {
	router := validationRouter()

	t.Run("valid request", func(t *testing.T) {
		w := postJSON(router, `{"vat_id":"DE123456789","zip_code":"86650"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("field errors use json names", func(t *testing.T) {
		w := postJSON(router, `{"vat_id":"AT123","zip_code":"1234","email":"nope"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp validationErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, dto.StatusInvalidInput, resp.Status)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)

		fields := map[string]string{}
		for _, d := range resp.Error.Details {
			fields[d.Field] = d.Message
		}
		assert.Equal(t, "Must be a German VAT id (DE followed by 9 digits)", fields["vat_id"])
		assert.Equal(t, "Must be exactly 5 digits", fields["zip_code"])
		assert.Equal(t, "Invalid email format", fields["email"])
	})

	t.Run("nested field path", func(t *testing.T) {
		w := postJSON(router, `{"zip_code":"86650","items":[{"product_id":1},{"product_id":0}]}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp validationErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "items[1].product_id", resp.Error.Details[0].Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := postJSON(router, `{"zip_code":`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp validationErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	})
}
