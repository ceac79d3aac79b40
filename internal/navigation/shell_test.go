package navigation

import (
	"context"
	"testing"

	"synapsetalk/internal/events"
	"synapsetalk/internal/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureEvents(t *testing.T) *[]events.Notice {
	t.Helper()
	var got []events.Notice
	events.SetCustomEmitter(func(ctx context.Context, name string, evt events.Notice) {
		if name == events.NavChanged {
			got = append(got, evt)
		}
	})
	t.Cleanup(func() { events.SetCustomEmitter(nil) })
	return &got
}

func TestShell_ControlsPutSettingsLast(t *testing.T) {
	pages := []Page{
		stubPage{PageHome, "Home"},
		stubPage{PageSettings, "Settings"},
		stubPage{PageSearch, "Search"},
		stubPage{PageChat, "Chat"},
	}
	shell, err := NewShell(&mocks.LoggerMock{}, pages...)
	require.NoError(t, err)

	controls := shell.Controls()
	require.Len(t, controls, 4)
	assert.Equal(t, []PageID{PageHome, PageSearch, PageChat, PageSettings},
		[]PageID{controls[0].Target, controls[1].Target, controls[2].Target, controls[3].Target})
	assert.True(t, controls[3].Settings)
	assert.False(t, controls[0].Settings)

	// the stack order is independent of the sidebar order
	stack := shell.Pages()
	require.Len(t, stack, 4)
	assert.Equal(t, PageSettings, stack[1].ID)
	assert.Equal(t, 1, stack[1].Index)
}

func TestShell_PressRoutesToTarget(t *testing.T) {
	got := captureEvents(t)
	shell, err := NewShell(&mocks.LoggerMock{}, fourPages()...)
	require.NoError(t, err)
	shell.Startup(context.Background())

	for i, control := range shell.Controls() {
		current := shell.Press(i)
		assert.Equal(t, control.Target, current.ID)
		assert.Equal(t, current, shell.Current())
	}

	require.Len(t, *got, 4)
	last := (*got)[3].Data.(Descriptor)
	assert.Equal(t, PageSettings, last.ID)
}

func TestShell_InvalidNavigationIsNoop(t *testing.T) {
	got := captureEvents(t)
	log := &mocks.LoggerMock{}
	shell, err := NewShell(log, fourPages()...)
	require.NoError(t, err)
	shell.Navigate(PageChat)

	assert.Equal(t, PageChat, shell.Press(10).ID)
	assert.Equal(t, PageChat, shell.Navigate("nope").ID)
	assert.Equal(t, PageChat, shell.NavigateIndex(7).ID)

	assert.Len(t, *got, 1)
	assert.Len(t, log.Warnings(), 3)
}

func TestShell_NavigateIndex(t *testing.T) {
	shell, err := NewShell(&mocks.LoggerMock{}, fourPages()...)
	require.NoError(t, err)

	assert.Equal(t, PageSearch, shell.NavigateIndex(1).ID)
	assert.Equal(t, 1, shell.Current().Index)
}

func TestShell_SinglePageHidesSidebar(t *testing.T) {
	shell, err := NewShell(&mocks.LoggerMock{}, stubPage{PageSettings, "Settings"})
	require.NoError(t, err)

	assert.False(t, shell.SidebarVisible())
	assert.Equal(t, PageSettings, shell.Current().ID)

	full, err := NewShell(&mocks.LoggerMock{}, fourPages()...)
	require.NoError(t, err)
	assert.True(t, full.SidebarVisible())
}

func TestShell_DuplicatePages(t *testing.T) {
	_, err := NewShell(&mocks.LoggerMock{}, stubPage{PageHome, "Home"}, stubPage{PageHome, "Home"})
	assert.ErrorIs(t, err, ErrDuplicatePage)
}

func TestShell_PaddedPageIDRejected(t *testing.T) {
	_, err := NewShell(&mocks.LoggerMock{}, stubPage{PageHome, "Home"}, stubPage{" chat ", "Chat"})
	assert.ErrorIs(t, err, ErrInvalidPageID)
}
