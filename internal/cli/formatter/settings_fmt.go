package formatter

import (
	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/settings"
)

var settingDescriptions = map[settings.Key]string{
	settings.KeyDesignThresholdMin: "design phase target (minutes)",
	settings.KeyCodingThresholdMin: "coding phase target (minutes)",
	settings.KeySoundEnabled:       "play start/warning/complete cues",
}

// FormatSettings renders every setting with its current value.
func FormatSettings(s domain.AppSettings) string {
	rows := make([][]string, 0, len(settings.Keys))
	for _, k := range settings.Keys {
		rows = append(rows, []string{string(k), Bold(settings.Value(s, k)), Dim(settingDescriptions[k])})
	}
	return Header("Settings") + "\n" + RenderTable([]string{"KEY", "VALUE", "DESCRIPTION"}, rows)
}
