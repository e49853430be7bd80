package entities

import "time"

// Timer is a countdown. Remaining is authoritative while the timer is at
// rest; while Running, the live value is derived from LastStarted at read
// time instead of being ticked by a background process.
type Timer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EndTime     time.Time `gorm:"column:end_time" json:"end_time"`
	Text        string    `gorm:"size:200" json:"text"`
	Duration    int64     `json:"duration"`  // Full length in seconds
	Remaining   int64     `json:"remaining"` // Seconds left when last persisted
	Running     bool      `json:"running"`
	LastStarted time.Time `gorm:"column:last_started" json:"last_started"`
	Loop        bool      `json:"loop"`
}

func (Timer) TableName() string {
	return "timers"
}

// RemainingAt returns the seconds left on the timer at the given instant.
// Stopped timers report their stored value. Running timers decay by the
// wall-clock time elapsed since LastStarted; looping timers wrap into the
// current cycle, others floor at zero. An exact cycle boundary reads as a
// full fresh cycle, never as zero, so a looping timer always shows time
// left while it runs.
func (t *Timer) RemainingAt(now time.Time) int64 {
	if !t.Running {
		return t.Remaining
	}
	elapsed := int64(now.Sub(t.LastStarted) / time.Second)
	rem := t.Remaining - elapsed
	if rem > 0 {
		return rem
	}
	if t.Loop && t.Duration > 0 {
		overshoot := (-rem) % t.Duration
		return t.Duration - overshoot
	}
	return 0
}

// Progress reports how far the countdown has advanced, in [0,1].
func (t *Timer) Progress() float64 {
	if t.Duration <= 0 {
		return 0.0
	}
	p := float64(t.Duration-t.Remaining) / float64(t.Duration)
	if p < 0 {
		return 0.0
	}
	if p > 1 {
		return 1.0
	}
	return p
}
