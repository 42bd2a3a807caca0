package view

import (
	"strconv"
	"time"
)

// monthNames are the lowercase Italian month names used for chart labels.
var monthNames = [12]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// FormatMonth turns a "YYYY-MM" bucket key into its display label, e.g.
// "2024-05" becomes "maggio 2024". Keys that do not parse pass through
// unchanged.
func FormatMonth(key string) string {
	parsed, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return monthNames[parsed.Month()-1] + " " + strconv.Itoa(parsed.Year())
}

// FormatDay renders a "YYYY-MM-DD" date as "14 maggio 2024". The "N/A"
// sentinel and unparseable values pass through unchanged.
func FormatDay(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return strconv.Itoa(parsed.Day()) + " " + monthNames[parsed.Month()-1] + " " + strconv.Itoa(parsed.Year())
}

// PluralizeOrders renders a count with the right noun form: "1 ordine" but
// "0 ordini", "9 ordini".
func PluralizeOrders(count int64) string {
	if count == 1 {
		return "1 ordine"
	}
	return strconv.FormatInt(count, 10) + " ordini"
}

// PluralizeAssignments renders an assignment count for the employee cards:
// "1 appartamento" but "3 appartamenti".
func PluralizeAssignments(count int64) string {
	if count == 1 {
		return "1 appartamento"
	}
	return strconv.FormatInt(count, 10) + " appartamenti"
}

// PluralizeEmployees renders a crew size: "1 dipendente" but "4 dipendenti".
// It takes an int because callers feed it the length of an id slice.
func PluralizeEmployees(count int) string {
	if count == 1 {
		return "1 dipendente"
	}
	return strconv.Itoa(count) + " dipendenti"
}
