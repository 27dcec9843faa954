// file: internals/features/finance/balance/service/classifier_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifierExplicitSetWins(t *testing.T) {
	c := NewFeeHeadClassifier(NewClassifierPolicy([]string{"Route Fee"}, nil))

	assert.Equal(t, CategoryTransport, c.Classify("Route Fee"))
	assert.Equal(t, CategoryTransport, c.Classify("  route fee  "), "pencocokan set harus case/space-insensitive")
	assert.Equal(t, CategoryAcademic, c.Classify("Tuition Fee"))
}

func TestClassifierSubstringFallback(t *testing.T) {
	c := NewFeeHeadClassifier(NewClassifierPolicy(nil, nil))

	tests := []struct {
		heading string
		want    FeeHeadCategory
	}{
		{"Bus Fee Term 1", CategoryTransport},
		{"VAN CHARGES", CategoryTransport},
		{"Transportation", CategoryTransport},
		{"Tuition", CategoryAcademic},
		{"Hostel Fee", CategoryAcademic},
		{"Library Fine", CategoryAcademic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.heading), "heading %q", tt.heading)
	}
}

func TestClassifierCustomPatternsReplaceDefaults(t *testing.T) {
	c := NewFeeHeadClassifier(NewClassifierPolicy(nil, []string{"shuttle"}))

	assert.Equal(t, CategoryTransport, c.Classify("Shuttle Fee"))
	// pola default tidak berlaku lagi setelah dioverride
	assert.Equal(t, CategoryAcademic, c.Classify("Bus Fee"))
}

func TestClassifierEmptyPatternsFallsBackToDefaults(t *testing.T) {
	p := NewClassifierPolicy(nil, nil)
	assert.Equal(t, DefaultTransportPatterns, p.TransportPatterns)
}
