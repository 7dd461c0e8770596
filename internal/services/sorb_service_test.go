package services

import (
	"testing"
	"time"

	"recruittrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestReadinessScore(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		lead models.SorbLead
		want int
	}{
		{"empty lead", models.SorbLead{}, 0},
		{"gt highly qualified", models.SorbLead{GTScore: intPtr(110)}, 25},
		{"gt qualified", models.SorbLead{GTScore: intPtr(105)}, 15},
		{"gt borderline", models.SorbLead{GTScore: intPtr(100)}, 8},
		{"gt below threshold", models.SorbLead{GTScore: intPtr(99)}, 0},
		{"contacted", models.SorbLead{ContactedAt: &now}, 10},
		{"medical cleared", models.SorbLead{HasMedical: true}, 15},
		{"airborne", models.SorbLead{HasAirborne: true}, 10},
		{"clean record", models.SorbLead{NoMoralWaiver: true}, 5},
		{"waiver needed", models.SorbLead{NoMoralWaiver: false}, 0},
		{"socom unit", models.SorbLead{SocomUnit: true}, 15},
		{"in pipeline", models.SorbLead{InPipeline: true}, 5},
		{"pt low", models.SorbLead{PTScore: intPtr(100)}, 5},
		{"pt mid range", models.SorbLead{PTScore: intPtr(200)}, 10},
		{"pt rounds up", models.SorbLead{PTScore: intPtr(250)}, 13},
		{"pt at full scale", models.SorbLead{PTScore: intPtr(300)}, 15},
		{"pt over scale stays capped", models.SorbLead{PTScore: intPtr(550)}, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReadinessScore(&tc.lead))
		})
	}
}

func TestReadinessScore_CappedAt100(t *testing.T) {
	now := time.Now()
	lead := models.SorbLead{
		GTScore:       intPtr(120),
		PTScore:       intPtr(600),
		ContactedAt:   &now,
		HasMedical:    true,
		HasAirborne:   true,
		NoMoralWaiver: true,
		SocomUnit:     true,
		InPipeline:    true,
	}
	assert.Equal(t, 100, ReadinessScore(&lead), "Everything maxed lands exactly on the cap")
}
