// Package analytics derives performance and risk figures from a journal's
// trade records. Every function is a pure computation over the inputs it is
// handed: callers pass the trade snapshot, the account, and the "now"
// timestamp explicitly, so results are reproducible under a fixed clock.
package analytics

import "time"

// SessionFormat is the wire format for session keys.
const SessionFormat = "2006-01-02"

// SessionCutoverHour marks the start of the next trading session. Trades
// executed at or after 18:00 local time roll into the following day, the
// way evening futures activity belongs to the next business day.
const SessionCutoverHour = 18

// SessionKey returns the logical trading day a trade executed at t belongs
// to, as YYYY-MM-DD.
func SessionKey(t time.Time) string {
	if t.Hour() >= SessionCutoverHour {
		t = t.AddDate(0, 0, 1)
	}
	return t.Format(SessionFormat)
}

// sessionTime reparses a session key anchored at noon local time. Noon keeps
// month comparisons stable across timezone shifts at midnight.
func sessionTime(key string) (time.Time, bool) {
	d, err := time.ParseInLocation(SessionFormat, key, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d.Add(12 * time.Hour), true
}
