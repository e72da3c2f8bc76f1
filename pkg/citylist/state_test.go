package citylist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListState(t *testing.T) {
	s := NewListState()
	assert.True(t, s.Loading)
	assert.Empty(t, s.Visible)

	// Typing before the load finishes is kept and applied afterwards.
	s = s.WithQuery("ly")
	assert.Empty(t, s.Visible)

	loaded := s.WithResult(Result{Records: sample})
	assert.False(t, loaded.Loading)
	assert.False(t, loaded.Failed)
	// "ly" matches the city Lyon and the country Italy.
	assert.Equal(t, []CityRecord{
		{Country: "France", City: "Lyon"},
		{Country: "Italy", City: "Rome"},
	}, loaded.Visible)

	cleared := loaded.WithQuery("")
	assert.Equal(t, sample, cleared.Visible)
	assert.Equal(t, "ly", loaded.Query, "WithQuery must not modify the receiver")
}

func TestListStateFailure(t *testing.T) {
	s := NewListState().WithResult(Result{Err: errors.New("offline")})
	assert.False(t, s.Loading)
	assert.True(t, s.Failed)
	assert.Empty(t, s.Records)
	assert.Empty(t, s.Visible)
}
