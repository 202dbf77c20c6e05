package handler

import (
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/steellight541/cinema-app/config"
	"github.com/steellight541/cinema-app/model"
	"github.com/steellight541/cinema-app/utils"
)

var janitorScheduler gocron.Scheduler

// StartScreeningJanitor schedules the nightly removal of screenings whose
// showtime is more than a day in the past. Set JANITOR_DISABLED to skip it.
func StartScreeningJanitor() {
	if config.Config("JANITOR_DISABLED") != "" {
		return
	}
	s, err := gocron.NewScheduler()
	if err != nil {
		utils.Logger.Errorw("failed to create janitor scheduler", "error", err)
		return
	}
	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(PurgePastScreenings),
	)
	if err != nil {
		utils.Logger.Errorw("failed to schedule janitor job", "error", err)
		return
	}
	s.Start()
	janitorScheduler = s
}

func StopScreeningJanitor() {
	if janitorScheduler != nil {
		janitorScheduler.Shutdown()
	}
}

// PurgePastScreenings drops screenings older than 24 hours. Entries whose
// date does not parse are left alone.
func PurgePastScreenings() {
	cutoff := time.Now().Add(-24 * time.Hour)

	storeMu.Lock()
	defer storeMu.Unlock()

	screenings, err := db.LoadScreenings()
	if err != nil {
		utils.Logger.Errorw("janitor failed to load screenings", "error", err)
		return
	}
	kept := []model.Screening{}
	for _, s := range screenings {
		t, parseErr := time.Parse(time.RFC3339, s.Date)
		if parseErr != nil || t.After(cutoff) {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(screenings) {
		return
	}
	if err := db.SaveScreenings(kept); err != nil {
		utils.Logger.Errorw("janitor failed to save screenings", "error", err)
		return
	}
	utils.Logger.Infow("removed past screenings", "count", len(screenings)-len(kept))
	broadcastScreenings()
}
