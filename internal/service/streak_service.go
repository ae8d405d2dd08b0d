package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/mirel/fitcoach/internal/error_values"
	"github.com/mirel/fitcoach/internal/repository"
)

type StreakService struct {
	streaksRepo repository.StreaksRepositoryI
}

func NewStreakService(streaksRepo repository.StreaksRepositoryI) *StreakService {
	if streaksRepo == nil {
		log.Fatal("on streak service provided nil repo")
	}
	return &StreakService{
		streaksRepo: streaksRepo,
	}
}

func (ss *StreakService) GetStreak(ctx context.Context, uid uuid.UUID) (int, *time.Time, error) {
	streak, lastActivity, err := ss.streaksRepo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return 0, nil, err
		}
		return 0, nil, errors.New("streaks repository error: " + err.Error())
	}
	return streak, lastActivity, nil
}

// UpdateStreak applies one activity event. One day since the last activity
// extends the streak, a longer gap resets it to zero, a same-day or
// out-of-order event leaves the count alone. The last activity date is
// refreshed on every accepted event. A user with no recorded activity
// starts at one.
func (ss *StreakService) UpdateStreak(ctx context.Context, uid uuid.UUID, today time.Time) (int, error) {
	if today.IsZero() {
		return 0, errorvalues.ErrInvalidDate
	}
	streak, lastActivity, err := ss.streaksRepo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return 0, err
		}
		return 0, errors.New("streaks repository error: " + err.Error())
	}

	newStreak := streak
	if lastActivity == nil {
		newStreak = 1
	} else {
		dayDifference := daysBetween(*lastActivity, today)
		if dayDifference == 1 {
			newStreak = streak + 1
		} else if dayDifference > 1 {
			newStreak = 0
		}
	}

	err = ss.streaksRepo.Set(ctx, uid, newStreak, today)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return 0, err
		}
		return 0, errors.New("streaks repository error: " + err.Error())
	}
	return newStreak, nil
}

func (ss *StreakService) ResetStreak(ctx context.Context, uid uuid.UUID) error {
	err := ss.streaksRepo.Reset(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return err
		}
		return errors.New("streaks repository error: " + err.Error())
	}
	return nil
}

// daysBetween counts whole calendar days from a to b, negative when b is
// earlier. Times of day are ignored.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	aMid := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bMid := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bMid.Sub(aMid) / (24 * time.Hour))
}
