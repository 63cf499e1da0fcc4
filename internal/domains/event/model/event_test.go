package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchEvent_DateOnly(t *testing.T) {
	var p PatchEventRequest
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-05-01T18:00:00+02:00"}`), &p))
	require.NoError(t, p.Validate())

	before := Event{ID: 2, Name: "Book fair", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Location: "Bogotá"}
	after := p.ApplyTo(before)

	assert.Equal(t, time.Date(2025, 5, 1, 16, 0, 0, 0, time.UTC), after.Date)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Location, after.Location)
}

func TestPatchEvent_RejectsNullLocation(t *testing.T) {
	var p PatchEventRequest
	require.NoError(t, json.Unmarshal([]byte(`{"location":null}`), &p))
	assert.Error(t, p.Validate())
}

func TestCreateEvent_RequiresDate(t *testing.T) {
	r := CreateEventRequest{Name: "Launch", Location: "Madrid"}
	assert.Error(t, r.Validate())
	r.Date = time.Now()
	assert.NoError(t, r.Validate())
}
