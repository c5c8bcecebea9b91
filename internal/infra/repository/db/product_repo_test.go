package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistinctKeepsFirstOccurrenceOrder(t *testing.T) {
	require.Equal(t, []string{"p1", "p2", "p3"}, distinct([]string{"p1", "p2", "p1", "p3", "p2"}))
	require.Empty(t, distinct(nil))
}
