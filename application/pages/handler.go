// Package pages serves the static informational pages.
package pages

import (
	"net/http"

	"booking/views"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/", h.Home)
	api.GET("/profile", h.Profile)
	api.GET("/destination", h.Destination)
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, views.Index, gin.H{
		"Title": "Beranda",
		"Nama":  "Pendakian Gunung Rinjani",
	})
}

func (h *Handler) Profile(c *gin.Context) {
	c.HTML(http.StatusOK, views.Profile, gin.H{
		"Title": "Halaman Profil",
	})
}

func (h *Handler) Destination(c *gin.Context) {
	c.HTML(http.StatusOK, views.Destination, gin.H{
		"Title": "Destinasi Wisata",
	})
}
