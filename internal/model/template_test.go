package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Softileo/schedule-saas/internal/model"
	"github.com/Softileo/schedule-saas/internal/timeutil"
)

func TestShiftTemplate_Duration(t *testing.T) {
	day := model.ShiftTemplate{StartMinutes: 8 * 60, EndMinutes: 16 * 60}
	assert.Equal(t, 8*60, day.Duration())

	night := model.ShiftTemplate{StartMinutes: 22 * 60, EndMinutes: 6 * 60}
	assert.Equal(t, 8*60, night.Duration())
}

func TestShiftTemplate_IsNightShift(t *testing.T) {
	assert.False(t, model.ShiftTemplate{StartMinutes: 8 * 60, EndMinutes: 16 * 60}.IsNightShift())
	assert.True(t, model.ShiftTemplate{StartMinutes: 22 * 60, EndMinutes: 6 * 60}.IsNightShift())
	assert.False(t, model.ShiftTemplate{StartMinutes: 0, EndMinutes: timeutil.MinutesPerDay}.IsNightShift())
}

func TestShiftTemplate_AppliesOn(t *testing.T) {
	everyDay := model.ShiftTemplate{}
	assert.True(t, everyDay.AppliesOn(timeutil.Sunday))

	weekdaysOnly := model.ShiftTemplate{Weekdays: map[timeutil.Weekday]struct{}{
		timeutil.Monday: {}, timeutil.Tuesday: {},
	}}
	assert.True(t, weekdaysOnly.AppliesOn(timeutil.Monday))
	assert.False(t, weekdaysOnly.AppliesOn(timeutil.Sunday))
}

func TestShiftTemplate_Covers(t *testing.T) {
	tpl := model.ShiftTemplate{StartMinutes: 8 * 60, EndMinutes: 16 * 60}
	assert.True(t, tpl.Covers(9*60, 10*60))
	assert.True(t, tpl.Covers(8*60, 16*60))
	assert.False(t, tpl.Covers(7*60, 10*60))
	assert.False(t, tpl.Covers(15*60, 17*60))
}
