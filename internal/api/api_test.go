package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leetboo/leetboo/internal/app/entitlement"
	"github.com/leetboo/leetboo/internal/app/habit"
	"github.com/leetboo/leetboo/internal/app/notify"
	"github.com/leetboo/leetboo/internal/infra/store"
)

func newTestServer(t *testing.T) (*Server, *entitlement.Static) {
	t.Helper()

	db, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	engine, err := habit.New(db, habit.SystemClock{})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	ent := entitlement.NewStatic(false)
	sched := notify.NewMemoryScheduler()
	planner := notify.NewPlanner(sched, engine, ent)

	return NewServer(engine, planner, sched, ent), ent
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

// ─── Health & Summary ───────────────────────────────────────────────────────

func TestAPI_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := decodeBody(t, w); body["status"] != "ok" {
		t.Errorf("status = %q, unexpected", body["status"])
	}
}

func TestAPI_Summary(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := decodeBody(t, w)
	if body["target_coins"].(float64) != 1000 {
		t.Errorf("target_coins = %v, want 1000", body["target_coins"])
	}
	activities, ok := body["activities"].([]interface{})
	if !ok || len(activities) != 3 {
		t.Errorf("expected 3 activities, got %v", body["activities"])
	}
}

// ─── Activities ─────────────────────────────────────────────────────────────

func TestAPI_ToggleActivity(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/activities/daily_problem/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	data := srv.engine.Snapshot()
	if a := data.Activity("daily_problem"); a.IsEnabled {
		t.Error("daily_problem should be disabled after toggle")
	}
}

func TestAPI_UnknownActivityTypeIs404(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/activities/napping/toggle", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAPI_ConfirmCreditsReward(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/activities/daily_problem/confirm", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["current_coins"].(float64) != 10 {
		t.Errorf("current_coins = %v, want 10", body["current_coins"])
	}

	// Confirming again the same day must not credit twice.
	w = doJSON(t, srv, "POST", "/api/activities/daily_problem/confirm", "")
	body = decodeBody(t, w)
	if body["current_coins"].(float64) != 10 {
		t.Errorf("current_coins after second confirm = %v, want 10", body["current_coins"])
	}
}

func TestAPI_DismissBanner(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/activities/daily_check_in/dismiss", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestAPI_Streak(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/activities/daily_problem/streak", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["streak"].(float64) != 0 {
		t.Errorf("streak = %v, want 0", body["streak"])
	}
}

// ─── Log ────────────────────────────────────────────────────────────────────

func TestAPI_LogBackdated(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/log",
		`{"type": "daily_problem", "date": "2025-07-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["current_coins"].(float64) != 10 {
		t.Errorf("current_coins = %v, want 10", body["current_coins"])
	}
}

func TestAPI_LogRejectsBadDate(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/log",
		`{"type": "daily_problem", "date": "July 1st"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

// ─── Coins / Target / Rate ──────────────────────────────────────────────────

func TestAPI_SetTarget(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "PUT", "/api/target", `{"coins": 2000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["target_coins"].(float64) != 2000 {
		t.Errorf("target_coins = %v, want 2000", body["target_coins"])
	}

	w = doJSON(t, srv, "PUT", "/api/target", `{"coins": 0}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero target: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAPI_AddCoins(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/coins/add", `{"amount": 25}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["current_coins"].(float64) != 25 {
		t.Errorf("current_coins = %v, want 25", body["current_coins"])
	}

	w = doJSON(t, srv, "POST", "/api/coins/add", `{"amount": -5}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative amount: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAPI_SetRate(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "PUT", "/api/rate", `{"monthly_rate": 500}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["estimated_monthly_coins"].(float64) != 500 {
		t.Errorf("estimated_monthly_coins = %v, want 500", body["estimated_monthly_coins"])
	}

	// null restores the automatic estimate.
	w = doJSON(t, srv, "PUT", "/api/rate", `{"monthly_rate": null}`)
	body = decodeBody(t, w)
	if body["estimated_monthly_coins"].(float64) != 370 {
		t.Errorf("estimated_monthly_coins = %v, want 370", body["estimated_monthly_coins"])
	}
}

// ─── Settings ───────────────────────────────────────────────────────────────

func TestAPI_PutSettingsPartialUpdate(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "PUT", "/api/settings/notifications",
		`{"reminder_frequency": "three_times_daily"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	times, ok := body["daily_reminder_times"].([]interface{})
	if !ok || len(times) != 3 {
		t.Errorf("expected 3 reminder times, got %v", body["daily_reminder_times"])
	}
	if body["enable_notifications"] != true {
		t.Error("untouched fields must keep their value")
	}
}

func TestAPI_PutSettingsRejectsBadFrequency(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "PUT", "/api/settings/notifications",
		`{"reminder_frequency": "hourly"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAPI_MagicSettingsRequireEntitlement(t *testing.T) {
	srv, ent := newTestServer(t)

	w := doJSON(t, srv, "PUT", "/api/settings/notifications",
		`{"magic_notifications_enabled": true}`)
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusPaymentRequired)
	}

	if _, err := ent.Purchase(); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	w = doJSON(t, srv, "PUT", "/api/settings/notifications",
		`{"magic_notifications_enabled": true}`)
	if w.Code != http.StatusOK {
		t.Errorf("status after purchase = %d, want %d", w.Code, http.StatusOK)
	}
}

// ─── Missions ───────────────────────────────────────────────────────────────

func TestAPI_OneTimeMissionLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/missions/first_checkin", "")
	if body := decodeBody(t, w); body["completed"] != false {
		t.Errorf("completed = %v, want false", body["completed"])
	}

	w = doJSON(t, srv, "POST", "/api/missions/first_checkin/complete", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}

	w = doJSON(t, srv, "GET", "/api/missions/first_checkin", "")
	if body := decodeBody(t, w); body["completed"] != true {
		t.Errorf("completed = %v, want true", body["completed"])
	}
}

func TestAPI_WeeklyMissionLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/missions/weekly/review/complete", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}

	w = doJSON(t, srv, "GET", "/api/missions/weekly/review", "")
	if body := decodeBody(t, w); body["completed"] != true {
		t.Errorf("completed = %v, want true", body["completed"])
	}
}

// ─── Subscription ───────────────────────────────────────────────────────────

func TestAPI_PurchaseGrantsEntitlement(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/subscription", "")
	if body := decodeBody(t, w); body["entitled"] != false {
		t.Errorf("entitled = %v, want false", body["entitled"])
	}

	w = doJSON(t, srv, "POST", "/api/subscription/purchase", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["entitled"] != true {
		t.Errorf("entitled = %v, want true after purchase", body["entitled"])
	}
	if body["outcome"] != "purchased" {
		t.Errorf("outcome = %v, want purchased", body["outcome"])
	}
}

// ─── Notifications ──────────────────────────────────────────────────────────

func TestAPI_PendingReflectsSettingsChanges(t *testing.T) {
	srv, _ := newTestServer(t)

	// Any settings write triggers a reminder rebuild.
	doJSON(t, srv, "PUT", "/api/settings/notifications", `{"enable_notifications": true}`)

	w := doJSON(t, srv, "GET", "/api/notifications/pending", "")
	body := decodeBody(t, w)
	pending, ok := body["pending"].([]interface{})
	if !ok || len(pending) == 0 {
		t.Errorf("expected pending reminders after rebuild, got %v", body["pending"])
	}

	doJSON(t, srv, "PUT", "/api/settings/notifications", `{"enable_notifications": false}`)
	w = doJSON(t, srv, "GET", "/api/notifications/pending", "")
	body = decodeBody(t, w)
	if pending, _ := body["pending"].([]interface{}); len(pending) != 0 {
		t.Errorf("expected no pending reminders when disabled, got %d", len(pending))
	}
}
