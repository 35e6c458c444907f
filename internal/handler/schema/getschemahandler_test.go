package schema

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-survey/internal/svc"
	"github.com/joeblew999/plat-survey/internal/types"
)

func TestGetSchemaHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/survey/schema?role=employee", nil)
	w := httptest.NewRecorder()
	GetSchemaHandler(&svc.ServiceContext{})(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.SchemaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "employee", resp.Role)
	assert.Len(t, resp.Columns, 22)

	var found bool
	for _, q := range resp.Questions {
		if q.Field == "stressfulMoments" {
			found = true
			assert.Equal(t, "yesno", q.Kind)
		}
	}
	assert.True(t, found)
}

func TestGetSchemaHandlerNoRole(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/survey/schema", nil)
	w := httptest.NewRecorder()
	GetSchemaHandler(&svc.ServiceContext{})(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":""`)
}
