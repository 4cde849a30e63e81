package domain

import "time"

const (
	MinThresholdMin = 1
	MaxThresholdMin = 120
)

// AppSettings are the user-configurable practice thresholds.
type AppSettings struct {
	DesignThresholdMin int  `json:"designThresholdMin"`
	CodingThresholdMin int  `json:"codingThresholdMin"`
	SoundEnabled       bool `json:"soundEnabled"`
}

// DefaultSettings returns the settings used for keys that were never saved.
func DefaultSettings() AppSettings {
	return AppSettings{
		DesignThresholdMin: 10,
		CodingThresholdMin: 20,
		SoundEnabled:       false,
	}
}

func (s AppSettings) DesignThreshold() time.Duration {
	return time.Duration(s.DesignThresholdMin) * time.Minute
}

func (s AppSettings) CodingThreshold() time.Duration {
	return time.Duration(s.CodingThresholdMin) * time.Minute
}
