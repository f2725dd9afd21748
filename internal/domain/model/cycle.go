package model

import (
	"fmt"
	"time"
)

// CyclePeriod identifies a payment cycle. The zero value means no reset happened yet.
type CyclePeriod struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the cycle period containing t, using t's location.
func PeriodOf(t time.Time) CyclePeriod {
	return CyclePeriod{Year: t.Year(), Month: t.Month()}
}

// IsZero reports whether no period was recorded.
func (p CyclePeriod) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// SameCycle compares two periods. Unless includeYear is set only the month number is compared.
func (p CyclePeriod) SameCycle(other CyclePeriod, includeYear bool) bool {
	if includeYear && p.Year != other.Year {
		return false
	}
	return p.Month == other.Month
}

// String formats the period as YYYY-MM, or "" for the zero period.
func (p CyclePeriod) String() string {
	if p.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
