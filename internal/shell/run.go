package shell

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	gormlogger "gorm.io/gorm/logger"

	"synapsetalk/internal/config"
	"synapsetalk/internal/database"
	"synapsetalk/internal/events"
	"synapsetalk/internal/navigation"
	"synapsetalk/internal/pages"
	"synapsetalk/internal/services"
)

// Options selects what the window shows. The zero value is the combined shell
// with every page and the default file locations.
type Options struct {
	// Standalone, when set, runs a single page in its own window without the sidebar.
	Standalone   navigation.PageID
	ConfigPath   string
	DBPath       string
	Logger       logger.Logger
	NewChatModel services.ChatModelFactory
}

// Application is everything one window needs, wired but not yet running.
type Application struct {
	App      *App
	Store    *config.Store
	Shell    *navigation.Shell
	Home     *pages.Home
	Search   *pages.Search
	Chat     *pages.Chat
	Settings *pages.Settings

	title  string
	width  int
	height int
	log    logger.Logger
}

// Build opens the configuration and database and composes the pages. The
// caller owns the returned Application and must Close it if Run is not called.
func Build(opts Options) (*Application, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger()
	}

	store := config.NewStore(opts.ConfigPath, log)

	db, err := database.Init(database.Config{
		Path:     opts.DBPath,
		LogLevel: gormlogger.Warn,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	var dbClose func() error
	if sqlDB, err := db.DB(); err == nil {
		dbClose = sqlDB.Close
	}

	closeOnErr := func(err error) (*Application, error) {
		if dbClose != nil {
			dbClose()
		}
		return nil, err
	}

	dbServices, err := services.NewDbServices(db, store, opts.NewChatModel)
	if err != nil {
		return closeOnErr(err)
	}

	a := &Application{
		Store:    store,
		Home:     pages.NewHome(),
		Search:   pages.NewSearch(dbServices.Catalog),
		Chat:     pages.NewChat(dbServices.Chats),
		Settings: pages.NewSettings(store),
		title:    "AI Designer",
		width:    1400,
		height:   800,
		log:      log,
	}

	all := []navigation.Page{a.Home, a.Search, a.Chat, a.Settings}
	selected := all
	if opts.Standalone != "" {
		selected = nil
		for _, p := range all {
			if p.ID() == opts.Standalone {
				selected = []navigation.Page{p}
				a.title = p.Title()
				a.width, a.height = 800, 600
			}
		}
		if selected == nil {
			return closeOnErr(fmt.Errorf("unknown page %q", opts.Standalone))
		}
	}

	a.Shell, err = navigation.NewShell(log, selected...)
	if err != nil {
		return closeOnErr(err)
	}

	a.App = NewApp(AppInfo{
		Name:        pages.AppName,
		ConfigPath:  store.Path(),
		Standalone:  opts.Standalone != "",
		Development: config.IsDevelopment(),
	}, dbClose)

	return a, nil
}

// Bind lists the structs whose exported methods the frontend may call.
func (a *Application) Bind() []interface{} {
	return []interface{}{
		a.App,
		a.Shell,
		a.Home,
		a.Search,
		a.Chat,
		a.Settings,
	}
}

func (a *Application) Title() string {
	return a.title
}

// Close releases the database when the window never ran.
func (a *Application) Close() error {
	return a.App.closeDB()
}

func (a *Application) startup(ctx context.Context) {
	events.EnableRuntimeEmitter()
	a.App.startup(ctx)
	a.Shell.Startup(ctx)
	a.Chat.Startup(ctx)
	a.Settings.Startup(ctx)
}

// Run builds the application and blocks until the window is closed.
func Run(assets fs.FS, opts Options) error {
	a, err := Build(opts)
	if err != nil {
		return err
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:  a.title,
		Width:  a.width,
		Height: a.height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         pages.AppName,
		},
		BackgroundColour: &options.RGBA{R: 75, G: 75, B: 75, A: 1},
		Logger:           a.log,
		LogLevel:         logger.INFO,
		OnStartup:        a.startup,
		OnShutdown:       a.App.shutdown,
		Bind:             a.Bind(),
	})
	if err != nil {
		a.Close()
		return err
	}
	return nil
}
