package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/varteks/matrixorder/internal/service"
)

type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListDealers(c *gin.Context) {
	dealers, err := h.svc.Dealers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": dealers})
}

// SearchDealers 搜索失败降级为空结果，不向用户暴露错误
func (h *CatalogHandler) SearchDealers(c *gin.Context) {
	dealers, err := h.svc.SearchDealers(c.Request.Context(), c.Query("q"))
	if err != nil || dealers == nil {
		c.JSON(http.StatusOK, gin.H{"items": []interface{}{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": dealers})
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	bases, err := h.svc.ProductBases(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": bases})
}

// SearchProducts 搜索失败降级为空结果，不向用户暴露错误
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	bases, err := h.svc.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil || bases == nil {
		c.JSON(http.StatusOK, gin.H{"items": []interface{}{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": bases})
}

func (h *CatalogHandler) ListSkus(c *gin.Context) {
	skus, err := h.svc.SkusByBase(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": skus})
}
