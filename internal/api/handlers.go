package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/mirel/fitcoach/internal/error_values"
	"github.com/mirel/fitcoach/internal/service"
	"github.com/mirel/fitcoach/pkg/entity"
	"github.com/mirel/fitcoach/pkg/httputil"
)

type SaveScheduleRequest struct {
	Week          int                  `json:"week"`
	WeekStartDate string               `json:"week_start_date"`
	Days          []entity.ScheduleDay `json:"days"`
}

type UpdateStreakRequest struct {
	TodayDate string `json:"today_date"`
}

type StreakResponse struct {
	Streak           int    `json:"streak"`
	LastActivityDate string `json:"last_activity_date,omitempty"`
}

type UsedItemsResponse struct {
	UserID string `json:"uid"`
	Week   int    `json:"week"`
	Kind   string `json:"kind"`
	IDs    []int  `json:"ids"`
}

func (s *Server) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get recommendations error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	plan, err := s.recommendationService.GeneratePlan(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("get recommendations error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user profile doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrInvalidProfile):
			logger.Error("get recommendations error: invalid profile", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "profile has missing or out-of-range fields", nil)
		case errors.Is(err, errorvalues.ErrNoCandidates):
			logger.Error("get recommendations error: empty candidate pool")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no workouts or meals available for selection", nil)
		default:
			logger.Error("get recommendations error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while generating plan", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("recommendations provided")
}

func (s *Server) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save schedule error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SaveScheduleRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("save schedule error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	weekStart, err := time.Parse(time.DateOnly, req.WeekStartDate)
	if err != nil {
		logger.Error("save schedule error: invalid week start date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid week_start_date format, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	err = s.scheduleService.SaveSchedule(ctx, uid, &service.SaveScheduleRequest{
		Week:          req.Week,
		WeekStartDate: weekStart,
		Days:          req.Days,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptySchedule):
			logger.Error("save schedule error: empty or malformed schedule")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "schedule has no valid assignments", nil)
		case errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("save schedule error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user profile doesn't exist", nil)
		default:
			logger.Error("save schedule error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving schedule", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "schedule saved successfully"})
	logger.Info("schedule saved")
}

func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get schedule error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	days, err := s.scheduleService.GetSchedule(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			logger.Error("get schedule error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user profile doesn't exist", nil)
			return
		}
		logger.Error("get schedule error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting schedule", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, days)
	logger.Info("schedule provided")
}

func (s *Server) GetUsedItems(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get used items error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil || week < 1 {
		logger.Error("get used items error: invalid week query param")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid week query param", nil)
		return
	}
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = entity.ItemKindWorkout
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	ids, err := s.scheduleService.GetUsedItemIDs(ctx, uid, kind, week)
	if err != nil {
		logger.Error("get used items error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting used items", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, UsedItemsResponse{
		UserID: uid.String(),
		Week:   week,
		Kind:   kind,
		IDs:    ids,
	})
	logger.Info("used items provided")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, lastActivity, err := s.streakService.GetStreak(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			logger.Error("get streak error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user profile doesn't exist", nil)
			return
		}
		logger.Error("get streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streak", nil)
		return
	}
	resp := StreakResponse{Streak: streak}
	if lastActivity != nil {
		resp.LastActivityDate = lastActivity.Format(time.DateOnly)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("streak provided")
}

func (s *Server) UpdateStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateStreakRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update streak error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	today, err := time.Parse(time.DateOnly, req.TodayDate)
	if err != nil {
		logger.Error("update streak error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, err := s.streakService.UpdateStreak(ctx, uid, today)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("update streak error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date format", nil)
		case errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("update streak error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user profile doesn't exist", nil)
		default:
			logger.Error("update streak error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating streak", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, StreakResponse{Streak: streak})
	logger.Info("streak updated")
}

func (s *Server) ResetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reset streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.streakService.ResetStreak(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			logger.Error("reset streak error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user profile doesn't exist", nil)
			return
		}
		logger.Error("reset streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resetting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, StreakResponse{Streak: 0})
	logger.Info("streak reset")
}
