package entities

import "time"

// RepeatMaskLength is the fixed width of an alarm repeat mask: one
// '0'/'1' character per weekday, Sunday first.
const RepeatMaskLength = 7

// RepeatDayLabels are the weekday labels shown by the dashboard, indexed
// like the repeat mask (Sunday first).
var RepeatDayLabels = [RepeatMaskLength]string{"Do", "Lu", "Ma", "Mi", "Ju", "Vi", "Sa"}

// RepeatDaySet holds the weekdays on which a repeating alarm fires.
type RepeatDaySet map[time.Weekday]struct{}

// NewRepeatDaySet builds a RepeatDaySet from weekdays.
func NewRepeatDaySet(days ...time.Weekday) RepeatDaySet {
	set := make(RepeatDaySet, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// EncodeRepeatDays encodes a weekday set as a 7-character '0'/'1' mask.
// Position i corresponds to time.Weekday(i), so position 0 is Sunday.
// Weekdays outside [0,6] are ignored.
func EncodeRepeatDays(days RepeatDaySet) string {
	mask := []byte("0000000")
	for d := range days {
		if d >= 0 && d < RepeatMaskLength {
			mask[d] = '1'
		}
	}
	return string(mask)
}

// DecodeRepeatDays parses a repeat mask back into a weekday set. Invalid
// input (wrong length, characters other than '0'/'1') degrades to an
// empty set, which callers treat as "no repeat".
func DecodeRepeatDays(mask string) RepeatDaySet {
	set := make(RepeatDaySet)
	if len(mask) != RepeatMaskLength {
		return set
	}
	for i := 0; i < RepeatMaskLength; i++ {
		switch mask[i] {
		case '1':
			set[time.Weekday(i)] = struct{}{}
		case '0':
		default:
			return make(RepeatDaySet)
		}
	}
	return set
}

// Alarm is a scheduled wake-up. A non-empty repeat mask makes it weekly
// recurring; otherwise At is a one-shot trigger.
type Alarm struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	At         time.Time `gorm:"column:datetime" json:"datetime"`
	Text       string    `gorm:"size:200" json:"text"`
	Enabled    bool      `json:"enabled"`
	RepeatMask string    `gorm:"column:repeat_mask;size:7" json:"repeat_mask"`
	Sound      string    `gorm:"size:200" json:"sound"`
	Snooze     int       `json:"snooze"` // Snooze interval in minutes
}

func (Alarm) TableName() string {
	return "alarms"
}

// RepeatDays decodes the alarm's repeat mask.
func (a *Alarm) RepeatDays() RepeatDaySet {
	return DecodeRepeatDays(a.RepeatMask)
}

// NextTriggerAfter returns the next time the alarm should fire at or
// after ref. A disabled alarm never fires. One-shot alarms fire at At if
// it has not passed yet. Repeating alarms scan the next 8 calendar days
// starting at ref's date; any non-empty weekly mask recurs within 7 days,
// the extra day absorbs the partial first day.
func (a *Alarm) NextTriggerAfter(ref time.Time) (time.Time, bool) {
	if !a.Enabled {
		return time.Time{}, false
	}

	days := a.RepeatDays()
	if len(days) == 0 {
		if !a.At.Before(ref) {
			return a.At, true
		}
		return time.Time{}, false
	}

	year, month, day := ref.Date()
	hour, min, sec := a.At.Clock()
	for i := 0; i < 8; i++ {
		candidate := time.Date(year, month, day+i, hour, min, sec, 0, ref.Location())
		if _, ok := days[candidate.Weekday()]; !ok {
			continue
		}
		if !candidate.Before(ref) {
			return candidate, true
		}
	}
	return time.Time{}, false
}
