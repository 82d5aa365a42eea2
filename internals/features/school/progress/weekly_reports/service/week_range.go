// file: internals/features/school/progress/weekly_reports/service/week_range.go
package service

import "time"

/* =========================
   Kalkulator batas minggu (ISO week, Senin–Minggu)
========================= */

// WeekRange rentang satu minggu laporan:
// Start = Senin 00:00:00, End = Minggu 23:59:59.999999999 (UTC).
type WeekRange struct {
	Start time.Time
	End   time.Time
}

// WeekRangeOf menghitung rentang tanggal sebuah ISO week.
// Jangkar: 4 Januari selalu berada di ISO week 1 tahun tsb.
func WeekRangeOf(weekNumber, year int) WeekRange {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	firstMonday := jan4.AddDate(0, 0, -(isoWeekday(jan4) - 1))
	start := firstMonday.AddDate(0, 0, (weekNumber-1)*7)
	end := start.AddDate(0, 0, 6).Add(24*time.Hour - time.Nanosecond)
	return WeekRange{Start: start, End: end}
}

// isoWeekday: Senin=1 ... Minggu=7 (time.Weekday punya Minggu=0).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ISOWeekOf (tahun, minggu) ISO dari sebuah tanggal.
func ISOWeekOf(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// PreviousISOWeek minggu ISO tepat sebelum `now`.
// Mundur 7 hari lalu baca ISOWeek-nya, jadi pergantian tahun ikut benar:
// awal Januari → minggu 52/53 tahun sebelumnya, bukan minggu 0.
func PreviousISOWeek(now time.Time) (year, week int) {
	return now.AddDate(0, 0, -7).ISOWeek()
}
