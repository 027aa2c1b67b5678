package models

import "time"

// TimeLeft is the countdown breakdown shown next to a deal. Total carries the
// raw remaining milliseconds; Total == 0 means the deal has ended.
type TimeLeft struct {
	Days    int   `json:"days"`
	Hours   int   `json:"hours"`
	Minutes int   `json:"minutes"`
	Seconds int   `json:"seconds"`
	Total   int64 `json:"total"`
}

// CalcTimeLeft decomposes end-now into days/hours/minutes/seconds. An end date
// at or before now yields the zero value, never negative fields.
func CalcTimeLeft(end, now time.Time) TimeLeft {
	total := end.Sub(now).Milliseconds()
	if total <= 0 {
		return TimeLeft{}
	}

	seconds := total / 1000
	return TimeLeft{
		Days:    int(seconds / 86400),
		Hours:   int(seconds / 3600 % 24),
		Minutes: int(seconds / 60 % 60),
		Seconds: int(seconds % 60),
		Total:   total,
	}
}

func (t TimeLeft) Expired() bool {
	return t.Total <= 0
}
