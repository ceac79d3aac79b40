package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit delivers a notice to the frontend. It is a no-op until
// EnableRuntimeEmitter is called from the Wails startup hook, so code running
// outside a window (tests, standalone services) never touches the runtime.
var Emit = func(ctx context.Context, name string, evt Notice) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt Notice) {
		if ctx == nil {
			return
		}
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt Notice)) {
	if f == nil {
		Emit = func(context.Context, string, Notice) {}
		return
	}
	Emit = f
}
