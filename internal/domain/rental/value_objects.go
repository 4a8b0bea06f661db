package rental

import (
	"errors"
	"math"
	"strings"
	"time"
)

// DateLayout is the wire format of rental dates.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// MaxPrice is the largest total a rental may cost; payments are stored as int4.
const MaxPrice = math.MaxInt32

var (
	ErrInvalidPeriod = errors.New("dateTo must be after dateFrom")
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
	ErrPriceTooLarge = errors.New("rental price exceeds the maximum")
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
	StatusCanceled   Status = "CANCELED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusFinished, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusCanceled
}

// Period is a whole-day rental interval. Both ends are calendar dates in UTC.
type Period struct {
	from time.Time
	to   time.Time
}

func NewPeriod(from, to time.Time) (Period, error) {
	p := Period{from: truncateDay(from), to: truncateDay(to)}
	if p.Days() <= 0 {
		return Period{}, ErrInvalidPeriod
	}
	return p, nil
}

func ParsePeriod(from, to string) (Period, error) {
	f, err := ParseDate(from)
	if err != nil {
		return Period{}, err
	}
	t, err := ParseDate(to)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(f, t)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func ReconstructPeriod(from, to time.Time) Period {
	return Period{from: truncateDay(from), to: truncateDay(to)}
}

// Days is the number of rental days: dateTo - dateFrom. Both ends are UTC
// midnights, so the difference in Unix seconds is a whole number of days.
func (p Period) Days() int {
	return int((p.to.Unix() - p.from.Unix()) / secondsPerDay)
}

// Price is the total charge for the period at the given daily rate. A total
// above MaxPrice is rejected instead of wrapping.
func (p Period) Price(dailyPrice int) (int, error) {
	if dailyPrice < 0 {
		return 0, errors.New("daily price cannot be negative")
	}
	days := p.Days()
	if dailyPrice > 0 && days > MaxPrice/dailyPrice {
		return 0, ErrPriceTooLarge
	}
	return days * dailyPrice, nil
}

func (p Period) From() time.Time { return p.from }
func (p Period) To() time.Time   { return p.to }

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
