package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe; the service is ready once its baseline
//     store is reachable and at least one market snapshot has been observed.
type HealthHandler struct {
	storePing func() error // checks baseline store connectivity
	ready     func() bool  // reports whether a snapshot exists
}

// NewHealthHandler constructs a HealthHandler. Either dependency may be nil,
// in which case the corresponding check is skipped.
func NewHealthHandler(storePing func() error, ready func() bool) *HealthHandler {
	return &HealthHandler{storePing: storePing, ready: ready}
}

// Register mounts the health and readiness endpoints into the provided router.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe (store reachable + snapshot observed)
	// @Summary      Readiness probe
	// @Description  Returns ready once the baseline store is reachable and market data has been fetched
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.storePing != nil && h.storePing() != nil {
			c.JSON(503, gin.H{"status": "degraded", "reason": "store unreachable"})
			return
		}
		if h.ready != nil && !h.ready() {
			c.JSON(503, gin.H{"status": "degraded", "reason": "no snapshot yet"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
