package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/varteks/matrixorder/internal/service"
)

type OrderHandler struct {
	svc   *service.OrderService
	share *service.ShareService
}

func NewOrderHandler(svc *service.OrderService, share *service.ShareService) *OrderHandler {
	return &OrderHandler{svc: svc, share: share}
}

// Submit 提交订单。校验失败与存储失败都返回400及原因；
// 成功返回本次提交的订单ID
func (h *OrderHandler) Submit(c *gin.Context) {
	var req service.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		// 校验失败与存储失败同样处理：
		// 存储错误原样透传，不重试、不报告部分成功
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order_id": orderID})
}

// Share 为一次已提交的订单生成可分享的摘要消息与深链
func (h *OrderHandler) Share(c *gin.Context) {
	message, err := h.share.ForOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, message)
}
