package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignModelConversion(t *testing.T) {
	raw := RawCampaign{
		ID:          7,
		Title:       "Community Garden Project",
		Goal:        "1000000000000000",
		Raised:      "400000000000000",
		Deadline:    1688448000,
		Description: "Urban gardens",
		Image:       "gardens/cover.jpg",
		Category:    "Community",
	}

	m := NewCampaignModel(raw, 2)
	assert.True(t, m.Featured)
	assert.Equal(t, 2, m.SortOrder)
	assert.Equal(t, CampaignStatusActive, m.Status)
	assert.Equal(t, "2023-07-04", m.Deadline.Format("2006-01-02"))

	assert.Equal(t, raw, m.ToRawCampaign())
}

func TestToRawCampaignDefaultsRaised(t *testing.T) {
	m := CampaignModel{Id: 1, GoalAmount: "100"}
	assert.Equal(t, "0", m.ToRawCampaign().Raised)
}

func TestCampaignModelTableName(t *testing.T) {
	assert.Equal(t, "campaign", CampaignModel{}.TableName())
}
