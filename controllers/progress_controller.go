package controllers

import (
	"net/http"
	"time"

	"github.com/vanshikasingh06/health-mate/cache"
	"github.com/vanshikasingh06/health-mate/services"
	"github.com/vanshikasingh06/health-mate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const progressCacheTTL = 2 * time.Minute

type ProgressController struct {
	Svc *services.ProgressService
}

func NewProgressController(svc *services.ProgressService) *ProgressController {
	return &ProgressController{Svc: svc}
}

// Report serves the three chart series, with a short per-user redis cache.
// Tracker writes invalidate the key.
func (p *ProgressController) Report(c *gin.Context) {
	uid, _ := currentUserID(c)
	key := cache.ProgressKey(uid)

	if cache.Enabled() {
		var cached services.ProgressReport
		if err := cache.Get(key, &cached); err == nil {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, &cached)
			return
		}
		c.Header("X-Cache", "MISS")
	}

	report, err := p.Svc.Report(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if cache.Enabled() {
		if err := cache.Set(key, report, progressCacheTTL); err != nil {
			utils.L().Warn("progress_cache_set_failed", zap.Error(err), zap.Uint("user_id", uid))
		}
	}

	c.JSON(http.StatusOK, report)
}
