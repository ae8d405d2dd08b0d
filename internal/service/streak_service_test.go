package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/mirel/fitcoach/internal/error_values"
	"github.com/mirel/fitcoach/internal/repository/mocks"
	"github.com/mirel/fitcoach/internal/service"
	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestUpdateStreak(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)
	serv := service.NewStreakService(streaksRepo)
	uid := uuid.New()
	lastDate := date("2024-01-01")

	testCases := []struct {
		Desc         string
		Today        time.Time
		WantStreak   int
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:       "next day extends streak",
			Today:      date("2024-01-02"),
			WantStreak: 6,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(5, &lastDate, nil)
				streaksRepo.EXPECT().Set(gomock.Any(), uid, 6, date("2024-01-02")).Return(nil)
			},
		},
		{
			Desc:       "gap resets streak",
			Today:      date("2024-01-05"),
			WantStreak: 0,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(5, &lastDate, nil)
				streaksRepo.EXPECT().Set(gomock.Any(), uid, 0, date("2024-01-05")).Return(nil)
			},
		},
		{
			Desc:       "same day keeps count but refreshes date",
			Today:      date("2024-01-01"),
			WantStreak: 5,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(5, &lastDate, nil)
				streaksRepo.EXPECT().Set(gomock.Any(), uid, 5, date("2024-01-01")).Return(nil)
			},
		},
		{
			Desc:       "out of order event keeps count",
			Today:      date("2023-12-30"),
			WantStreak: 5,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(5, &lastDate, nil)
				streaksRepo.EXPECT().Set(gomock.Any(), uid, 5, date("2023-12-30")).Return(nil)
			},
		},
		{
			Desc:       "first activity starts at one",
			Today:      date("2024-01-02"),
			WantStreak: 1,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(0, nil, nil)
				streaksRepo.EXPECT().Set(gomock.Any(), uid, 1, date("2024-01-02")).Return(nil)
			},
		},
		{
			Desc:         "zero date rejected",
			Today:        time.Time{},
			Error:        errorvalues.ErrInvalidDate,
			MockPrepFunc: func() {},
		},
		{
			Desc:  "unknown user",
			Today: date("2024-01-02"),
			Error: errorvalues.ErrProfileNotFound,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(0, nil, errorvalues.ErrProfileNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			streak, err := serv.UpdateStreak(ctx, uid, tc.Today)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.WantStreak, streak)
		})
	}
}

func TestResetStreak(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)
	serv := service.NewStreakService(streaksRepo)
	uid := uuid.New()

	streaksRepo.EXPECT().Reset(gomock.Any(), uid).Return(nil)
	assert.NoError(t, serv.ResetStreak(context.Background(), uid))

	streaksRepo.EXPECT().Reset(gomock.Any(), uid).Return(errorvalues.ErrProfileNotFound)
	assert.ErrorIs(t, serv.ResetStreak(context.Background(), uid), errorvalues.ErrProfileNotFound)
}

func TestGetStreak(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)
	serv := service.NewStreakService(streaksRepo)
	uid := uuid.New()
	lastDate := date("2024-02-10")

	streaksRepo.EXPECT().Get(gomock.Any(), uid).Return(3, &lastDate, nil)
	streak, last, err := serv.GetStreak(context.Background(), uid)
	assert.NoError(t, err)
	assert.Equal(t, 3, streak)
	assert.Equal(t, &lastDate, last)
}
