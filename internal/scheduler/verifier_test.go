package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyIdenticalPlansMatch(t *testing.T) {
	a := &SubstitutionPlan{
		TargetMinutesPerPlayer: 45,
		Events: []SubstitutionEvent{
			{TimeMinutes: 30, FieldPlayerID: "x", BenchPlayerID: "y"},
		},
	}
	b := &SubstitutionPlan{
		TargetMinutesPerPlayer: 45.00001,
		Events: []SubstitutionEvent{
			{TimeMinutes: 30.00001, FieldPlayerID: "x", BenchPlayerID: "y"},
		},
	}
	assert.True(t, Verify(a, b))
}

func TestVerifyDetectsEventCountMismatch(t *testing.T) {
	a := &SubstitutionPlan{TargetMinutesPerPlayer: 45}
	b := &SubstitutionPlan{
		TargetMinutesPerPlayer: 45,
		Events: []SubstitutionEvent{
			{TimeMinutes: 30, FieldPlayerID: "x", BenchPlayerID: "y"},
		},
	}
	assert.False(t, Verify(a, b))
}

func TestVerifyDetectsDifferentFieldPlayer(t *testing.T) {
	a := &SubstitutionPlan{Events: []SubstitutionEvent{{TimeMinutes: 30, FieldPlayerID: "x", BenchPlayerID: "y"}}}
	b := &SubstitutionPlan{Events: []SubstitutionEvent{{TimeMinutes: 30, FieldPlayerID: "z", BenchPlayerID: "y"}}}
	assert.False(t, Verify(a, b))
}

func TestVerifyDetectsTargetMinutesMismatch(t *testing.T) {
	a := &SubstitutionPlan{TargetMinutesPerPlayer: 45}
	b := &SubstitutionPlan{TargetMinutesPerPlayer: 50}
	assert.False(t, Verify(a, b))
}

func TestVerifyNilHandling(t *testing.T) {
	a := &SubstitutionPlan{}
	assert.True(t, Verify(nil, nil))
	assert.False(t, Verify(a, nil))
	assert.False(t, Verify(nil, a))
}
