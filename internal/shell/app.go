package shell

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// AppInfo is shown in the window chrome and the settings footer.
type AppInfo struct {
	Name        string `json:"name"`
	ConfigPath  string `json:"configPath"`
	Standalone  bool   `json:"standalone"`
	Development bool   `json:"development"`
}

// App owns the window lifecycle.
type App struct {
	ctx     context.Context
	info    AppInfo
	dbClose func() error
}

// NewApp creates a new App application struct
func NewApp(info AppInfo, dbClose func() error) *App {
	return &App{info: info, dbClose: dbClose}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	mode := "production"
	if a.info.Development {
		mode = "development"
	}
	runtime.LogInfo(ctx, fmt.Sprintf("%s started (%s), configuration at %s", a.info.Name, mode, a.info.ConfigPath))
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if err := a.closeDB(); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		return
	}
	runtime.LogInfo(ctx, "database closed")
}

// closeDB releases the database. Calling it more than once is safe.
// Not exported: App is bound to the frontend.
func (a *App) closeDB() error {
	if a.dbClose == nil {
		return nil
	}
	closeFn := a.dbClose
	a.dbClose = nil
	return closeFn()
}

// Info returns static facts about the running application.
func (a *App) Info() AppInfo {
	return a.info
}
