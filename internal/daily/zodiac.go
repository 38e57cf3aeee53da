package daily

import (
	"fmt"

	domainerrors "streetbite/internal/domain/errors"
)

// Sign is a western zodiac sign.
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

// Element groups signs for display.
type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

// cutoff is the first day of month that belongs to sign.
type cutoff struct {
	month    int
	firstDay int
	sign     Sign
}

// Each sign starts on firstDay of month and runs until the day before the
// next row's start. Capricorn wraps over the new year.
var cutoffs = []cutoff{
	{month: 1, firstDay: 20, sign: Aquarius},
	{month: 2, firstDay: 19, sign: Pisces},
	{month: 3, firstDay: 21, sign: Aries},
	{month: 4, firstDay: 20, sign: Taurus},
	{month: 5, firstDay: 21, sign: Gemini},
	{month: 6, firstDay: 21, sign: Cancer},
	{month: 7, firstDay: 23, sign: Leo},
	{month: 8, firstDay: 23, sign: Virgo},
	{month: 9, firstDay: 23, sign: Libra},
	{month: 10, firstDay: 23, sign: Scorpio},
	{month: 11, firstDay: 22, sign: Sagittarius},
	{month: 12, firstDay: 22, sign: Capricorn},
}

var elements = map[Sign]Element{
	Aries: Fire, Leo: Fire, Sagittarius: Fire,
	Taurus: Earth, Virgo: Earth, Capricorn: Earth,
	Gemini: Air, Libra: Air, Aquarius: Air,
	Cancer: Water, Scorpio: Water, Pisces: Water,
}

// Element returns the sign's element.
func (s Sign) Element() Element {
	return elements[s]
}

// ZodiacSign maps a birth day and month to its sign using the fixed cutoff
// table. The day is only range-checked against 1..31.
func ZodiacSign(day, month int) (Sign, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{
			"date": fmt.Sprintf("invalid day/month %d/%d", day, month),
		})
	}

	row := cutoffs[month-1]
	if day >= row.firstDay {
		return row.sign, nil
	}

	// Before the cutoff the previous month's sign still applies.
	return cutoffs[(month+10)%12].sign, nil
}
