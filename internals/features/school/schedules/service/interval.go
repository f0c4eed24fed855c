// file: internals/features/school/schedules/service/interval.go
package service

import (
	"fmt"
	"strings"
	"time"
)

/* =========================
   Interval model
   =========================
   [StartMin, EndMin) — menit-sejak-tengah-malam, granularitas menit,
   tanpa konversi timezone (wall-clock institusi).
   Predikat Overlaps ini SATU-SATUNYA sumber kebenaran overlap;
   semua jalur conflict check memakai fungsi ini, tidak diduplikasi.
*/

const minutesPerDay = 24 * 60

type Interval struct {
	StartMin int
	EndMin   int
}

// Valid: 0 <= start < end <= 24:00.
func (iv Interval) Valid() bool {
	return iv.StartMin >= 0 && iv.StartMin < iv.EndMin && iv.EndMin <= minutesPerDay
}

// Overlaps: strict di kedua ujung — back-to-back (end == start) TIDAK bentrok.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.StartMin < other.EndMin && other.StartMin < iv.EndMin
}

// ParseTimeOfDay menerima "HH:mm" atau "HH:mm:ss" (detik diabaikan).
func ParseTimeOfDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("waktu kosong")
	}
	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("format waktu %q tidak valid (pakai HH:mm)", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatTimeOfDay balikan "HH:mm" dari menit-sejak-tengah-malam.
func FormatTimeOfDay(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
