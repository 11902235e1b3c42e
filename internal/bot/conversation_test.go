package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftLifecycle(t *testing.T) {
	SetDraftTTL(time.Minute)

	d := startDraft(10)
	assert.Equal(t, StepQuestion, d.Step)

	d.Text = "What day is it?"
	d.Step = StepOptions
	saveDraft(10, d)

	got, ok := getDraft(10)
	require.True(t, ok)
	assert.Equal(t, "What day is it?", got.Text)
	assert.Equal(t, StepOptions, got.Step)

	dropDraft(10)
	_, ok = getDraft(10)
	assert.False(t, ok)
}

func TestDraftExpires(t *testing.T) {
	SetDraftTTL(20 * time.Millisecond)

	startDraft(10)
	time.Sleep(50 * time.Millisecond)

	_, ok := getDraft(10)
	assert.False(t, ok)
}

func TestStartDraftReplacesExisting(t *testing.T) {
	SetDraftTTL(time.Minute)

	d := startDraft(10)
	d.Text = "old draft"
	d.Step = StepSelectGroup
	saveDraft(10, d)

	startDraft(10)
	got, ok := getDraft(10)
	require.True(t, ok)
	assert.Equal(t, StepQuestion, got.Step)
	assert.Empty(t, got.Text)
}

func TestSplitOptions(t *testing.T) {
	options := splitOptions("Moses\n\n  Aaron  \nMiriam\n")
	assert.Equal(t, []string{"Moses", "Aaron", "Miriam"}, options)

	assert.Nil(t, splitOptions("   \n\n"))
}
