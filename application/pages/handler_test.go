package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"booking/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, views.Install(r))
	NewHandler().RegisterRoutes(r.Group(""))

	tests := []struct {
		path string
		want string
	}{
		{"/", "Pendakian Gunung Rinjani"},
		{"/profile", "Halaman Profil"},
		{"/destination", "Destinasi Wisata"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}
