package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/varteks/matrixorder/internal/service"
)

type SummaryHandler struct {
	svc *service.SummaryService
}

func NewSummaryHandler(svc *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// ListOrders 持久化订单行，按创建时间倒序，可按经销商过滤
func (h *SummaryHandler) ListOrders(c *gin.Context) {
	lines, err := h.svc.Orders(c.Request.Context(), c.Query("dealer_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": lines})
}

// Get 展开的订单行与按产品合计，可按经销商过滤
func (h *SummaryHandler) Get(c *gin.Context) {
	rows, totals, err := h.svc.Flatten(c.Request.Context(), c.Query("dealer_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []service.FlattenedRow{}
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "totals": totals})
}

// Export 导出汇总报表为xlsx附件
func (h *SummaryHandler) Export(c *gin.Context) {
	f, filename, err := h.svc.Export(c.Request.Context(), c.Query("dealer_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
