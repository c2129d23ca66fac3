package booking

import (
	"testing"

	"lablink/models"

	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	allowed := [][2]string{
		{models.BookingStatusPending, models.BookingStatusConfirmed},
		{models.BookingStatusPending, models.BookingStatusCancelled},
		{models.BookingStatusConfirmed, models.BookingStatusSampleCollected},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled},
		{models.BookingStatusSampleCollected, models.BookingStatusInProgress},
		{models.BookingStatusInProgress, models.BookingStatusCompleted},
		{models.BookingStatusInProgress, models.BookingStatusCancelled},
	}
	for _, tr := range allowed {
		require.True(t, CanTransition(tr[0], tr[1]), "%s -> %s should be allowed", tr[0], tr[1])
	}

	denied := [][2]string{
		{models.BookingStatusPending, models.BookingStatusCompleted},
		{models.BookingStatusPending, models.BookingStatusInProgress},
		{models.BookingStatusCompleted, models.BookingStatusCancelled},
		{models.BookingStatusCompleted, models.BookingStatusPending},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed},
		{models.BookingStatusSampleCollected, models.BookingStatusPending},
	}
	for _, tr := range denied {
		require.False(t, CanTransition(tr[0], tr[1]), "%s -> %s should be rejected", tr[0], tr[1])
	}
}

func TestTerminalStatesAdmitNothing(t *testing.T) {
	all := []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusSampleCollected,
		models.BookingStatusInProgress,
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
	}
	for _, to := range all {
		require.False(t, CanTransition(models.BookingStatusCompleted, to))
		require.False(t, CanTransition(models.BookingStatusCancelled, to))
	}
}
