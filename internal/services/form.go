package services

import (
	"regexp"
	"strings"

	"github.com/damantine/klinik-wa-bot/internal/models"
)

// formPattern matches the four labeled registration lines in order. Labels are
// case-insensitive and whitespace around the colon is tolerated; values run to
// the end of their line.
var formPattern = regexp.MustCompile(
	`(?i)Nama\s*:\s*(.+)\n\s*Unit\s*:\s*(.+)\n\s*Jabatan\s*:\s*(.+)\n\s*Referensi\s*Hari/Jam\s*:\s*(.+)`)

// ParseForm extracts the registration fields from a raw form message.
// It returns false when any of the four labels is missing or out of order.
func ParseForm(raw string) (*models.FormSubmission, bool) {
	clean := strings.TrimSpace(strings.ReplaceAll(raw, "\r", ""))

	match := formPattern.FindStringSubmatch(clean)
	if match == nil {
		return nil, false
	}

	return &models.FormSubmission{
		Nama:    strings.TrimSpace(match[1]),
		Unit:    strings.TrimSpace(match[2]),
		Jabatan: strings.TrimSpace(match[3]),
		Waktu:   strings.TrimSpace(match[4]),
	}, true
}
