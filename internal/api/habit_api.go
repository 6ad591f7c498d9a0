package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/leetboo/leetboo/internal/domain"
)

// ─── Habit engine API ───────────────────────────────────────────────────────
// Numeric validation lives here, at the boundary: the engine trusts its
// callers and accepts values as-is.

// pathActivityType parses the {type} URL segment, writing a 404 on failure.
func pathActivityType(w http.ResponseWriter, r *http.Request) (domain.ActivityType, bool) {
	t, err := domain.ParseActivityType(chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return "", false
	}
	return t, true
}

// GET /api/summary
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Summarize())
}

// GET /api/activities
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activities": s.engine.Summarize().Activities,
	})
}

// POST /api/activities/{type}/toggle
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	t, ok := pathActivityType(w, r)
	if !ok {
		return
	}
	if err := s.engine.ToggleActivity(t); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.rebuildReminders()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activities": s.engine.Summarize().Activities,
	})
}

// POST /api/activities/{type}/confirm
func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	t, ok := pathActivityType(w, r)
	if !ok {
		return
	}
	if err := s.engine.ConfirmCheckIn(t); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Summarize())
}

// POST /api/activities/{type}/dismiss
func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	t, ok := pathActivityType(w, r)
	if !ok {
		return
	}
	if err := s.engine.DismissBanner(t); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/activities/{type}/streak
func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	t, ok := pathActivityType(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"type":          t,
		"streak":        s.engine.CurrentStreak(t),
		"monthly_count": s.engine.MonthlyCount(t),
	})
}

// GET /api/activities/{type}/missed
func (s *Server) handleMissedDates(w http.ResponseWriter, r *http.Request) {
	t, ok := pathActivityType(w, r)
	if !ok {
		return
	}
	missed := s.engine.MissedDates(t)
	out := make([]string, len(missed))
	for i, d := range missed {
		out[i] = d.Format(time.DateOnly)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"missed": out})
}

// --- /api/log (time travel: backdated completion) ---

type logRequest struct {
	Type string `json:"type"`
	Date string `json:"date"` // "2006-01-02"; empty means today
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, err := domain.ParseActivityType(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	date := time.Now()
	if req.Date != "" {
		date, err = time.ParseInLocation(time.DateOnly, req.Date, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
	}

	if err := s.engine.LogActivity(t, date, true); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Summarize())
}

// --- coins / target / rate ---

type coinsRequest struct {
	Coins int `json:"coins"`
}

// PUT /api/target
func (s *Server) handleSetTarget(w http.ResponseWriter, r *http.Request) {
	var req coinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Coins <= 0 {
		writeError(w, http.StatusBadRequest, "target must be positive")
		return
	}
	s.engine.SetTargetCoins(req.Coins)
	writeJSON(w, http.StatusOK, s.engine.Summarize())
}

// PUT /api/coins
func (s *Server) handleSetCoins(w http.ResponseWriter, r *http.Request) {
	var req coinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Coins < 0 {
		writeError(w, http.StatusBadRequest, "coins must not be negative")
		return
	}
	s.engine.SetCurrentCoins(req.Coins)
	writeJSON(w, http.StatusOK, s.engine.Summarize())
}

type addCoinsRequest struct {
	Amount int `json:"amount"`
}

// POST /api/coins/add
func (s *Server) handleAddCoins(w http.ResponseWriter, r *http.Request) {
	var req addCoinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	s.engine.AddCoins(req.Amount)
	writeJSON(w, http.StatusOK, s.engine.Summarize())
}

type rateRequest struct {
	MonthlyRate *int `json:"monthly_rate"` // null restores the automatic estimate
}

// PUT /api/rate
func (s *Server) handleSetRate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.MonthlyRate != nil && *req.MonthlyRate <= 0 {
		writeError(w, http.StatusBadRequest, "monthly rate must be positive")
		return
	}
	s.engine.SetCustomMonthlyRate(req.MonthlyRate)
	writeJSON(w, http.StatusOK, s.engine.Summarize())
}

// --- notification settings ---

// GET /api/settings/notifications
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.NotificationSettings())
}

type settingsRequest struct {
	EnableNotifications       *bool                 `json:"enable_notifications"`
	ReminderFrequency         *string               `json:"reminder_frequency"`
	DailyReminderTimes        []domain.ReminderTime `json:"daily_reminder_times"`
	MagicNotificationsEnabled *bool                 `json:"magic_notifications_enabled"`
}

// PUT /api/settings/notifications — partial update; absent fields keep
// their current value.
func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.EnableNotifications != nil {
		s.engine.SetNotificationsEnabled(*req.EnableNotifications)
	}
	if req.ReminderFrequency != nil {
		f, err := domain.ParseReminderFrequency(*req.ReminderFrequency)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := s.engine.SetReminderFrequency(f); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	for i, rt := range req.DailyReminderTimes {
		if rt.Hour < 0 || rt.Hour > 23 || rt.Minute < 0 || rt.Minute > 59 {
			writeError(w, http.StatusBadRequest, "reminder time out of range")
			return
		}
		s.engine.SetReminderTime(i, rt)
	}
	if req.MagicNotificationsEnabled != nil {
		if *req.MagicNotificationsEnabled && !s.entitlements.IsEntitled() {
			writeError(w, http.StatusPaymentRequired, domain.ErrNotEntitled.Error())
			return
		}
		s.engine.SetMagicNotificationsEnabled(*req.MagicNotificationsEnabled)
	}

	s.rebuildReminders()
	writeJSON(w, http.StatusOK, s.engine.NotificationSettings())
}

// --- missions ---

// GET /api/missions/{key}
func (s *Server) handleMissionStatus(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"key":       key,
		"completed": s.engine.IsOneTimeMissionCompleted(key),
	})
}

// POST /api/missions/{key}/complete
func (s *Server) handleCompleteMission(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	s.engine.CompleteOneTimeMission(key)
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/missions/weekly/{key}
func (s *Server) handleWeeklyMissionStatus(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"key":       key,
		"completed": s.engine.IsWeeklyMissionCompleted(key, time.Now()),
	})
}

// POST /api/missions/weekly/{key}/complete
func (s *Server) handleCompleteWeeklyMission(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	s.engine.CompleteWeeklyMission(key, time.Now())
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/missions/weekly/{key}/missed
func (s *Server) handleMissedWeekly(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	missed := s.engine.MissedWeeklyMissions(key)
	out := make([]string, len(missed))
	for i, d := range missed {
		out[i] = d.Format(time.DateOnly)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"missed_weeks": out})
}

// --- notifications / subscription ---

// GET /api/notifications/pending
func (s *Server) handlePendingNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pending": s.scheduler.ListPending(),
	})
}

// GET /api/subscription
func (s *Server) handleSubscription(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entitled": s.entitlements.IsEntitled(),
	})
}

// POST /api/subscription/purchase
func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.entitlements.Purchase()
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.rebuildReminders()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"outcome":  outcome,
		"entitled": s.entitlements.IsEntitled(),
	})
}

// POST /api/subscription/restore
func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	if err := s.entitlements.Restore(); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.rebuildReminders()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entitled": s.entitlements.IsEntitled(),
	})
}

// rebuildReminders refreshes the scheduled set after a settings-level
// change. Scheduling failures are non-fatal to engine state.
func (s *Server) rebuildReminders() {
	if s.planner == nil {
		return
	}
	if err := s.planner.Rebuild(); err != nil {
		// Engine state is unaffected; the next rebuild retries.
		log.Printf("[api] rebuild reminders: %v", err)
	}
}
