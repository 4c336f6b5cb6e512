package scheduler

import (
	"log"
	"os"
	"time"

	"gatepassku_backend/internals/features/users/auth/service"
)

// StartBlacklistCleanupScheduler sapu blacklist token secara berkala
// supaya map tidak menumpuk token yang sudah lewat exp.
func StartBlacklistCleanupScheduler(bl *service.TokenBlacklist) {
	go func() {
		// interval dari env (default: 1 jam)
		interval := time.Hour
		if val := os.Getenv("TOKEN_BLACKLIST_SWEEP_INTERVAL"); val != "" {
			if parsed, err := time.ParseDuration(val); err == nil && parsed > 0 {
				interval = parsed
			}
		}

		for {
			time.Sleep(interval)

			if removed := bl.Sweep(); removed > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus dari blacklist", removed)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}
		}
	}()
}
