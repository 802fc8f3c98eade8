package dateutil

import (
	"time"
)

// Age calculates the age at a given date.
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AgeInYear calculates the age a person reaches during a calendar year.
// Annual projections use whole calendar years, so the birthday is assumed
// to have occurred by year end.
func AgeInYear(birthDate time.Time, year int) int {
	return year - birthDate.Year()
}
