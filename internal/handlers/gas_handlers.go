package handlers

import (
	"net/http"

	"github.com/cyphera/eth-gas-gateway/internal/interfaces"
	"github.com/gin-gonic/gin"
)

// GasHandler serves the gas estimate endpoint
type GasHandler struct {
	estimator interfaces.GasEstimator
}

// NewGasHandler creates a new gas handler
func NewGasHandler(estimator interfaces.GasEstimator) *GasHandler {
	return &GasHandler{estimator: estimator}
}

// EstimateGas godoc
// @Summary Estimate gas or read chain data
// @Description Returns recent blocks, the ETH spot price or the network gas price for the reserved
// @Description function names getLatestBlocks, getEthPrice and getGasPrice. Otherwise calls a view
// @Description function or estimates the gas and fee of a state-changing contract call.
// @Tags gas
// @Accept json
// @Produce json
// @Param request body GasEstimateRequest true "Gas estimate request"
// @Success 200 {object} GasEstimateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/gas/estimate [post]
func (h *GasHandler) EstimateGas(c *gin.Context) {
	var req GasEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, bindError(err))
		return
	}

	resp, err := h.estimator.Estimate(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
