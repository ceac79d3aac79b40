package events

import (
	"context"
	"encoding/json"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func logRuntimeEvent(ctx context.Context, name string, event Notice) {
	data, err := json.Marshal(event)
	if err != nil {
		runtime.LogError(ctx, "events: failed to marshal "+name+": "+err.Error())
		return
	}

	payload := name + " " + string(data)

	switch event.Type {
	case EventError:
		runtime.LogError(ctx, payload)
	case EventWarn:
		runtime.LogWarning(ctx, payload)
	case EventSuccess, EventInfo:
		runtime.LogInfo(ctx, payload)
	default:
		runtime.LogDebug(ctx, payload)
	}
}
