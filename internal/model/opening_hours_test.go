package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Softileo/schedule-saas/internal/model"
	"github.com/Softileo/schedule-saas/internal/timeutil"
)

func TestBuildOpeningHours_Defaults(t *testing.T) {
	oh := model.BuildOpeningHours(9*60, 21*60, nil)

	mon := oh.Window(timeutil.Monday)
	assert.Equal(t, 9*60, mon.Open)
	assert.Equal(t, 21*60, mon.Close)
	assert.False(t, mon.Closed)

	sat := oh.Window(timeutil.Saturday)
	assert.Equal(t, model.SaturdayDefaultCloseMinutes, sat.Close, "saturday close is capped at 16:00 by default")

	sun := oh.Window(timeutil.Sunday)
	assert.True(t, sun.Closed)
}

func TestBuildOpeningHours_SaturdayEarlierThanCapIsKept(t *testing.T) {
	oh := model.BuildOpeningHours(9*60, 14*60, nil)
	sat := oh.Window(timeutil.Saturday)
	assert.Equal(t, 14*60, sat.Close, "a close time already under the 16:00 cap is not extended")
}

func TestBuildOpeningHours_Overrides(t *testing.T) {
	overrides := map[timeutil.Weekday]*model.OpeningWindow{
		timeutil.Sunday:  {Open: 10 * 60, Close: 14 * 60},
		timeutil.Tuesday: nil,
	}
	oh := model.BuildOpeningHours(9*60, 21*60, overrides)

	sun := oh.Window(timeutil.Sunday)
	assert.False(t, sun.Closed)
	assert.Equal(t, 10*60, sun.Open)

	tue := oh.Window(timeutil.Tuesday)
	assert.True(t, tue.Closed, "a nil override marks the day closed")
}

func TestOpeningHours_Slots(t *testing.T) {
	oh := model.BuildOpeningHours(9*60, 10*60+30, nil)
	slots := oh.Slots(timeutil.Monday)
	assert.Equal(t, [][2]int{{540, 570}, {570, 600}, {600, 630}}, slots)

	assert.Nil(t, oh.Slots(timeutil.Sunday), "closed day has no slots")
}

func TestOpeningHours_Window_MissingEntryIsClosed(t *testing.T) {
	oh := model.OpeningHours{}
	assert.True(t, oh.Window(timeutil.Monday).Closed)
}
