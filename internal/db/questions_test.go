package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddQuestionOptionCount(t *testing.T) {
	setupTestDB(t)

	_, err := AddQuestion(1, "Too few?", []string{"only one"}, 0)
	assert.ErrorIs(t, err, ErrBadOptionCount)

	var eleven []string
	for i := 0; i < 11; i++ {
		eleven = append(eleven, fmt.Sprintf("option %d", i))
	}
	_, err = AddQuestion(1, "Too many?", eleven, 0)
	assert.ErrorIs(t, err, ErrBadOptionCount)

	_, err = AddQuestion(1, "Two is fine?", []string{"yes", "no"}, 0)
	assert.NoError(t, err)

	_, err = AddQuestion(1, "Ten is fine?", eleven[:10], 9)
	assert.NoError(t, err)
}

func TestAddQuestionCorrectIndexBounds(t *testing.T) {
	setupTestDB(t)

	_, err := AddQuestion(1, "Out of range?", []string{"a", "b"}, 2)
	assert.ErrorIs(t, err, ErrBadCorrectIndex)

	_, err = AddQuestion(1, "Negative?", []string{"a", "b"}, -1)
	assert.ErrorIs(t, err, ErrBadCorrectIndex)
}

func TestOptionListRoundTrip(t *testing.T) {
	setupTestDB(t)

	q, err := AddQuestion(1, "Colors?", []string{"red", "green", "blue"}, 1)
	require.NoError(t, err)

	options, err := q.OptionList()
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "green", "blue"}, options)
}

func TestGetPostedQuestionsSkipsUnposted(t *testing.T) {
	setupTestDB(t)

	posted, err := AddQuestion(7, "Posted?", []string{"yes", "no"}, 0)
	require.NoError(t, err)
	require.NoError(t, AttachPoll(posted.ID, "poll-1", -100123, 42))

	_, err = AddQuestion(7, "Draft never sent?", []string{"yes", "no"}, 0)
	require.NoError(t, err)

	list, err := GetPostedQuestions(7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Posted?", list[0].Question.Text)
	assert.Equal(t, "poll-1", list[0].Poll.PollID)
}

func TestFindQuestionByPollID(t *testing.T) {
	setupTestDB(t)

	q, err := AddQuestion(7, "Found by poll?", []string{"yes", "no"}, 1)
	require.NoError(t, err)
	require.NoError(t, AttachPoll(q.ID, "poll-xyz", -100123, 42))

	got, err := FindQuestionByPollID("poll-xyz")
	require.NoError(t, err)
	assert.Equal(t, q.ID, got.ID)
	assert.Equal(t, 1, got.CorrectOption)

	_, err = FindQuestionByPollID("no-such-poll")
	assert.Error(t, err)
}

func TestLatestOpenPollByCreator(t *testing.T) {
	setupTestDB(t)

	first, err := AddQuestion(7, "First?", []string{"a", "b"}, 0)
	require.NoError(t, err)
	require.NoError(t, AttachPoll(first.ID, "poll-1", -100123, 1))

	second, err := AddQuestion(7, "Second?", []string{"a", "b"}, 0)
	require.NoError(t, err)
	require.NoError(t, AttachPoll(second.ID, "poll-2", -100123, 2))

	p, err := LatestOpenPollByCreator(7)
	require.NoError(t, err)
	assert.Equal(t, "poll-2", p.PollID)

	p.IsClosed = true
	require.NoError(t, SavePoll(p))

	p, err = LatestOpenPollByCreator(7)
	require.NoError(t, err)
	assert.Equal(t, "poll-1", p.PollID)

	_, err = LatestOpenPollByCreator(999)
	assert.Error(t, err)
}
