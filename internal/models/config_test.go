package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigOption_Normalize(t *testing.T) {
	assert.Equal(t, ConfigOption{Value: "wfo", Name: "WFO"}, ConfigOption{Value: "wfo", Name: "WFO"}.Normalize())
	assert.Equal(t, ConfigOption{Value: "WFO", Name: "WFO"}, ConfigOption{Name: "WFO"}.Normalize())
	assert.Equal(t, ConfigOption{Value: "wfo", Name: "wfo"}, ConfigOption{Value: "wfo"}.Normalize())
}

func TestNormalizeOptions_DropsEmptyEntries(t *testing.T) {
	opts := NormalizeOptions([]ConfigOption{
		{Value: "CI", Name: "Check In"},
		{},
		{Name: "Check Out"},
	})

	assert.Equal(t, []ConfigOption{
		{Value: "CI", Name: "Check In"},
		{Value: "Check Out", Name: "Check Out"},
	}, opts)
}

func TestNormalizeLists_PreservesOrder(t *testing.T) {
	cfg := Config{
		Kind: ConfigKindForm,
		PresenceType: []ConfigOption{
			{Value: "CI"},
			{Value: "CO"},
		},
		WorkType: []ConfigOption{{Name: "WFH"}},
	}

	cfg.NormalizeLists()

	assert.Equal(t, "CI", cfg.PresenceType[0].Value)
	assert.Equal(t, "CO", cfg.PresenceType[1].Value)
	assert.Equal(t, "WFH", cfg.WorkType[0].Value)
	assert.Empty(t, cfg.APKVersion)
}
