package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	jobUC    domain.JobUsecase
	healthUC usecase.HealthUsecase
}

func NewSystemHandler(public *gin.RouterGroup, jobUC domain.JobUsecase, healthUC usecase.HealthUsecase) {
	handler := &SystemHandler{jobUC: jobUC, healthUC: healthUC}

	public.GET("/health", handler.Health)
	public.GET("/stats", handler.Stats)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	if h.healthUC == nil {
		response.Success(c, http.StatusOK, "System operational", gin.H{"status": "ok"})
		return
	}

	status, healthy := h.healthUC.Check(c.Request.Context())
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Success:   false,
			Message:   "System degraded",
			Data:      status,
			RequestID: c.GetString("RequestID"),
		})
		return
	}

	response.Success(c, http.StatusOK, "System operational", status)
}

// Stats godoc
// @Summary      Site counters
// @Description  Number of jobs, distinct companies, employees and recruiters
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /stats [get]
func (h *SystemHandler) Stats(c *gin.Context) {
	stats, err := h.jobUC.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Stats", stats)
}
