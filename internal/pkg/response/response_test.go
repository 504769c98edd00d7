package response

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/pkg/util"
	"PedGuard/internal/service"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// A DTO that fails its validate tags must come back as a client error, not
// fall through to the unknown-error branch.
func TestErrorMapsValidationFailureToBadRequest(t *testing.T) {
	t.Parallel()

	req := &dto.SuggestionCreateDTO{
		Title:          "install a pedestrian signal",
		Content:        strings.Repeat("a", 5001),
		LocationLat:    37.5665,
		LocationLon:    126.978,
		SuggestionType: "SIGNAL_INSTALL",
	}
	err := util.ValidateDTO(req)
	require.Error(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, err)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, BadRequest, resp.Code)
	assert.Equal(t, "invalid parameter", resp.Message)
}

func TestErrorMapsSentinelsAndUnknowns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "not found sentinel",
			err:         service.ErrSuggestionNotFound,
			wantCode:    NotFound,
			wantMessage: service.ErrSuggestionNotFound.Error(),
		},
		{
			name:        "conflict sentinel",
			err:         service.ErrStatusTransition,
			wantCode:    Conflict,
			wantMessage: service.ErrStatusTransition.Error(),
		},
		{
			name:        "unknown error",
			err:         errors.New("connection reset"),
			wantCode:    InternalServerError,
			wantMessage: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			Error(c, tt.err)

			assert.Equal(t, http.StatusOK, w.Code)
			resp := decodeEnvelope(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
