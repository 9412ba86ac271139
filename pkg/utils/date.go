package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta YYYY-MM-DD como meia-noite local. Vazio resulta em zero.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Formatos aceitos para carimbos de data vindos do back-office
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.DateTime,
	time.RFC3339,
	time.DateOnly,
}

// ParseTimestamp interpreta um carimbo sem fuso (hora local do back-office).
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ViDateTimeLayout segue o toLocaleString('vi-VN'): hora antes da data, sem zeros à esquerda.
const ViDateTimeLayout = "15:04:05 2/1/2006"

// FormatViTimestamp formata para exibição; valores ilegíveis são exibidos como vieram.
func FormatViTimestamp(raw string) string {
	t, ok := ParseTimestamp(raw)
	if !ok {
		return raw
	}
	return t.Format(ViDateTimeLayout)
}
