package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 1e-9

func TestPaymentHistoryScore(t *testing.T) {
	m := Default()

	tests := []struct {
		name        string
		onTime      float64
		daysLateAvg float64
		want        float64
	}{
		{"perfect history", 100, 0, 1.0},
		{"penalty saturates at 90 days", 100, 90, 0.50},
		{"no further penalty past 90 days", 100, 180, 0.50},
		{"partial penalty", 95, 5, 0.923611111111111},
		{"half on time", 50, 0, 0.50},
		{"no payments on time", 0, 0, 0.0},
		{"small lateness on low base", 60, 45, 0.45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, m.PaymentHistoryScore(tt.onTime, tt.daysLateAvg), delta)
		})
	}
}

func TestPaymentHistoryScore_NoUpperClamp(t *testing.T) {
	// Out-of-contract input escapes above 1.0 in the default model.
	m := Default()
	assert.InDelta(t, 1.5, m.PaymentHistoryScore(150, 0), delta)
}

func TestPaymentHistoryScore_ClampedVariant(t *testing.T) {
	m := Default()
	m.ClampComponents = true

	assert.Equal(t, 1.0, m.PaymentHistoryScore(150, 0))
	assert.Equal(t, 0.0, m.PaymentHistoryScore(-20, 0))
}

func TestUtilizationScore_Boundaries(t *testing.T) {
	m := Default()

	tests := []struct {
		utilization float64
		want        float64
	}{
		{0, 0.95},
		{10, 0.95},
		{10.01, 1.0},
		{30, 1.0},
		{30.01, 0.85},
		{50, 0.85},
		{50.01, 0.60},
		{75, 0.60},
		{75.01, 0.30},
		{200, 0.30},
	}

	for _, tt := range tests {
		got := m.UtilizationScore(tt.utilization)
		assert.Equal(t, tt.want, got, "utilization %v", tt.utilization)
	}
}

func TestCreditAgeScore(t *testing.T) {
	m := Default()

	tests := []struct {
		years float64
		want  float64
	}{
		{0, 0.40},
		{0.99, 0.40},
		{1, 0.70},
		{2.5, 0.70},
		{3, 0.85},
		{4.99, 0.85},
		{5, 1.0},
		{25, 1.0},
	}

	for _, tt := range tests {
		got := m.CreditAgeScore(tt.years)
		assert.Equal(t, tt.want, got, "years %v", tt.years)
	}
}

func TestCreditMixScore(t *testing.T) {
	m := Default()

	// No products at all is the 0.30 floor, not zero.
	assert.Equal(t, 0.30, m.CreditMixScore(0, 0, false))

	// Saturation: natural max is 1.2, clamped to 1.0.
	assert.Equal(t, 1.0, m.CreditMixScore(5, 5, true))

	tests := []struct {
		name      string
		secured   int
		unsecured int
		card      bool
		want      float64
	}{
		{"one of each", 1, 1, true, 0.70},
		{"card only", 0, 0, true, 0.20},
		{"single secured loan", 1, 0, false, 0.30},
		{"loan types cap at two", 4, 0, false, 0.60},
		{"two unsecured no card", 0, 2, false, 0.40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, m.CreditMixScore(tt.secured, tt.unsecured, tt.card), delta)
		})
	}
}

func TestNewCreditScore(t *testing.T) {
	m := Default()

	tests := []struct {
		name        string
		inquiries   int
		newAccounts int
		want        float64
	}{
		{"no recent activity", 0, 0, 1.0},
		{"inquiry penalty caps at 0.60", 4, 0, 0.40},
		{"new account penalty caps at 0.60", 0, 4, 0.40},
		{"single inquiry", 1, 0, 0.85},
		{"single new account", 0, 1, 0.80},
		{"penalties do not stack", 2, 2, 0.60},
		{"deep saturation holds the floor", 40, 40, 0.40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, m.NewCreditScore(tt.inquiries, tt.newAccounts), delta)
		})
	}
}
