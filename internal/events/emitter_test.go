package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetCustomEmitter(t *testing.T) {
	t.Cleanup(func() { SetCustomEmitter(nil) })

	var gotName string
	var got Notice
	SetCustomEmitter(func(ctx context.Context, name string, evt Notice) {
		gotName = name
		got = evt
	})

	Emit(context.Background(), NavChanged, NewInfo("switched", 2))

	assert.Equal(t, NavChanged, gotName)
	assert.Equal(t, EventInfo, got.Type)
	assert.Equal(t, "switched", got.Message)
	assert.Equal(t, 2, got.Data)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.Timestamp.IsZero())
}

func TestSetCustomEmitter_NilResetsToNoop(t *testing.T) {
	SetCustomEmitter(nil)

	assert.NotPanics(t, func() {
		Emit(context.Background(), SettingsSaved, NewSuccess("ok", nil))
	})
}

func TestNoticeConstructors(t *testing.T) {
	assert.Equal(t, EventWarn, NewWarn("w", nil).Type)
	assert.Equal(t, EventError, NewError("e", nil).Type)
	assert.Equal(t, EventSuccess, NewSuccess("s", nil).Type)
	assert.NotEqual(t, NewInfo("a", nil).ID, NewInfo("a", nil).ID)
}
