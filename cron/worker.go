package cron

import (
	"time"

	promoRepo "github.com/sHubh-blip/hd-booking/database/repository/promo"
	"github.com/sHubh-blip/hd-booking/utils"

	cronv3 "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartPromoSweeper runs an hourly job that flips valid=false on promo codes
// whose expiry date has passed, so the valid flag keeps meaning what the read
// paths assume. Returns the scheduler so callers can Stop it on shutdown.
func StartPromoSweeper(repo promoRepo.PromoRepository) *cronv3.Cron {
	logger := utils.GetLogger()

	c := cronv3.New()
	sweep := func() {
		n, err := repo.ExpireOutdated(time.Now())
		if err != nil {
			logger.Error("Promo expiry sweep failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("Expired promo codes", zap.Int64("count", n))
		}
	}

	if _, err := c.AddFunc("@hourly", sweep); err != nil {
		logger.Error("Failed to schedule promo expiry sweep", zap.Error(err))
		return c
	}
	c.Start()

	// Run once at startup so stale codes do not linger until the first tick.
	go sweep()

	return c
}
