package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGroupTwiceKeepsOneRecord(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, RegisterGroup(-100123, "Sunday School"))
	require.NoError(t, RegisterGroup(-100123, "Sunday School (renamed)"))

	groups, err := GetRegisteredGroups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(-100123), groups[0].ChatID)
	assert.Equal(t, "Sunday School (renamed)", groups[0].Title)
}

func TestFindGroupUnregistered(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, RegisterGroup(-100123, "Sunday School"))

	_, err := FindGroup(-100999)
	assert.Error(t, err)

	g, err := FindGroup(-100123)
	require.NoError(t, err)
	assert.Equal(t, "Sunday School", g.Title)
}

func TestGetRegisteredGroupsSortedByTitle(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, RegisterGroup(-1, "Zebras"))
	require.NoError(t, RegisterGroup(-2, "Ants"))

	groups, err := GetRegisteredGroups()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Ants", groups[0].Title)
	assert.Equal(t, "Zebras", groups[1].Title)
}
