package model

import "github.com/Softileo/schedule-saas/internal/timeutil"

// SaturdayDefaultCloseMinutes is the default Saturday closing time (16:00)
// applied when no explicit override is given.
const SaturdayDefaultCloseMinutes = 16 * 60

// OpeningWindow is one weekday's opening interval, or a closed marker.
type OpeningWindow struct {
	Open   int
	Close  int
	Closed bool
}

// OpeningHours maps a weekday to its opening window for the scheduled
// month. Every weekday has an entry; a missing entry is treated as
// closed by callers.
type OpeningHours map[timeutil.Weekday]OpeningWindow

// BuildOpeningHours constructs the weekday-indexed opening-hours table
// from the organization's default open/close time, then applies any
// explicit per-weekday overrides.
//
// Defaults: Mon-Fri open using defaultOpen/defaultClose; Saturday open
// using defaultOpen but closing no later than 16:00; Sunday closed.
func BuildOpeningHours(defaultOpen, defaultClose int, overrides map[timeutil.Weekday]*OpeningWindow) OpeningHours {
	oh := make(OpeningHours, 7)
	satClose := defaultClose
	if satClose > SaturdayDefaultCloseMinutes {
		satClose = SaturdayDefaultCloseMinutes
	}
	for w := timeutil.Monday; w <= timeutil.Friday; w++ {
		oh[w] = OpeningWindow{Open: defaultOpen, Close: defaultClose}
	}
	oh[timeutil.Saturday] = OpeningWindow{Open: defaultOpen, Close: satClose}
	oh[timeutil.Sunday] = OpeningWindow{Closed: true}

	for w, ov := range overrides {
		if ov == nil {
			oh[w] = OpeningWindow{Closed: true}
			continue
		}
		oh[w] = *ov
	}
	return oh
}

// Window returns the opening window for weekday w, or a closed window
// if none was configured.
func (oh OpeningHours) Window(w timeutil.Weekday) OpeningWindow {
	if win, ok := oh[w]; ok {
		return win
	}
	return OpeningWindow{Closed: true}
}

// Slots partitions the opening window for weekday w into consecutive
// 30-minute slots. Returns nil if the day is closed or the window is
// empty. When the window length is not a multiple of 30 minutes, the
// last slot is shorter and ends at the closing time.
func (oh OpeningHours) Slots(w timeutil.Weekday) [][2]int {
	win := oh.Window(w)
	if win.Closed || win.Close <= win.Open {
		return nil
	}
	const slotMinutes = 30
	var slots [][2]int
	for s := win.Open; s < win.Close; s += slotMinutes {
		e := s + slotMinutes
		if e > win.Close {
			e = win.Close
		}
		slots = append(slots, [2]int{s, e})
	}
	return slots
}
