package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/layerlens/model"
	cs "github.com/dasdy/layerlens/web/components"
)

// StatsHandle handles requests to the stats page.
func (s *ServerHandler) StatsHandle(w http.ResponseWriter, _ *http.Request) {
	slog.Info("Handling stats page request")

	live := make([]model.LayerUsage, 0)
	if s.Tracker != nil {
		live = s.Tracker.GatherUsage()
	}

	stored := make([]model.LayerUsage, 0)

	if s.Storage != nil {
		var err error

		stored, err = s.Storage.GatherLayerUsage()
		if err != nil {
			slog.Error("Failed to get stats", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}
	}

	renderOrFail(cs.Page("layerlens stats", 0, cs.LayerStats(live, stored)), w)
}
