// Package nepalidate renders Gregorian dates in an approximate Bikram Sambat form.
//
// The conversion adds 57 to the year and keeps the Gregorian month and day
// numbers. It is a display approximation, not a calendar conversion.
package nepalidate

import (
	"fmt"
	"strings"
	"time"
)

// YearOffset is added to the Gregorian year to get the displayed BS year.
const YearOffset = 57

// Language selects English or Nepali output.
type Language string

const (
	English Language = "en"
	Nepali  Language = "np"
)

// ParseLanguage maps a request value to a Language, defaulting to English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "np", "ne", "nepali":
		return Nepali
	default:
		return English
	}
}

var (
	monthsEN = [12]string{"Baisakh", "Jestha", "Ashadh", "Shrawan", "Bhadra", "Aswin", "Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra"}
	monthsNP = [12]string{"बैशाख", "जेठ", "असार", "श्रावण", "भदौ", "असोज", "कार्तिक", "मंसिर", "पुष", "माघ", "फाल्गुन", "चैत्र"}
	daysEN   = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	daysNP   = [7]string{"आइतबार", "सोमबार", "मंगलबार", "बुधबार", "बिहिबार", "शुक्रबार", "शनिबार"}
)

const devanagariZero = '०'

// ToNepaliNumerals replaces ASCII digits with Devanagari digits.
func ToNepaliNumerals(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			r = devanagariZero + (r - '0')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToEnglishNumerals replaces Devanagari digits with ASCII digits.
func ToEnglishNumerals(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= devanagariZero && r <= devanagariZero+9 {
			r = '0' + (r - devanagariZero)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MonthName returns the BS month label for a Gregorian month.
func MonthName(m time.Month, lang Language) string {
	if lang == Nepali {
		return monthsNP[m-1]
	}
	return monthsEN[m-1]
}

// DayName returns the weekday label.
func DayName(d time.Weekday, lang Language) string {
	if lang == Nepali {
		return daysNP[d]
	}
	return daysEN[d]
}

// Year returns the approximate BS year of t.
func Year(t time.Time) int {
	return t.Year() + YearOffset
}

// Format renders t as "15 Poush, 2081 BS (Monday)" or its Nepali equivalent.
func Format(t time.Time, lang Language) string {
	if lang == Nepali {
		return fmt.Sprintf("%s %s, %s (%s)",
			ToNepaliNumerals(fmt.Sprint(t.Day())),
			MonthName(t.Month(), Nepali),
			ToNepaliNumerals(fmt.Sprint(Year(t))),
			DayName(t.Weekday(), Nepali))
	}
	return fmt.Sprintf("%d %s, %d BS (%s)", t.Day(), MonthName(t.Month(), English), Year(t), DayName(t.Weekday(), English))
}

// ShortDate renders t as "2081-09-15", with Devanagari digits for Nepali.
func ShortDate(t time.Time, lang Language) string {
	s := fmt.Sprintf("%04d-%02d-%02d", Year(t), int(t.Month()), t.Day())
	if lang == Nepali {
		return ToNepaliNumerals(s)
	}
	return s
}
