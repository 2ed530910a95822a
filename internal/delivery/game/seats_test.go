package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridduel/internal/domain/match"
	errs "gridduel/internal/errors"
)

func TestSeats_AssignsInOrder(t *testing.T) {
	s := NewSeats()

	first, err := s.Acquire()
	require.NoError(t, err)
	assert.Equal(t, match.SideA, first)

	second, err := s.Acquire()
	require.NoError(t, err)
	assert.Equal(t, match.SideB, second)

	_, err = s.Acquire()
	assert.ErrorIs(t, err, errs.ErrGameFull)
	assert.Equal(t, 2, s.Taken())

	s.Release(match.SideA)
	again, err := s.Acquire()
	require.NoError(t, err)
	assert.Equal(t, match.SideA, again)
}
