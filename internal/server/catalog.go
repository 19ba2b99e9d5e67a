package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
)

func (s *Server) SearchProducts(c *gin.Context) {
	req := catalogdomain.SearchRequest{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: strings.TrimSpace(c.Query("category")),
	}

	var err error
	if req.MinPrice, err = parsePriceParam(c, "minPrice"); err != nil {
		AbortWithError(c, err)
		return
	}
	if req.MaxPrice, err = parsePriceParam(c, "maxPrice"); err != nil {
		AbortWithError(c, err)
		return
	}

	products, err := s.catalogSvc.Search(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) ListProductsByCategory(c *gin.Context) {
	products, err := s.catalogSvc.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) ListCategories(c *gin.Context) {
	categories, err := s.catalogSvc.Categories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func parsePriceParam(c *gin.Context, name string) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, newValidationError(name, "invalid_price", "price must be a number")
	}
	return value, nil
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, newValidationError(name, "invalid_id", "id must be a positive integer")
	}
	return id, nil
}
