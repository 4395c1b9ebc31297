package main

import (
	"fmt"
	"log"
	"runtime"
	"runtime/debug"

	"avif-live/internal/codec"
	"avif-live/internal/config"
	"avif-live/internal/gui"
	"avif-live/internal/logger"
	"avif-live/internal/preview"
	"avif-live/internal/services"
	"avif-live/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Application owns the Fyne app and everything wired into its window.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	cfg     config.Config

	controller *preview.Controller
	view       *gui.MainView

	shutdown *shutdown.Manager
}

func main() {
	configureRuntime()

	application, err := NewApplication(config.Default())
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// configureRuntime favours throughput for the large short-lived buffers that
// every re-encode allocates.
func configureRuntime() {
	debug.SetGCPercent(200)
}

func NewApplication(cfg config.Config) (*Application, error) {
	logLevel := config.LogLevelFromEnv()
	appLogger := logger.NewConsoleLogger(logLevel)

	app.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    config.AppName,
		Version: config.AppVersion,
	})
	fyneApp := app.NewWithID(config.AppID)

	window := fyneApp.NewWindow(config.AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":     config.AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight),
		"go_version":  runtime.Version(),
		"num_cpu":     runtime.NumCPU(),
		"log_level":   logLevel.String(),
	})

	view := gui.NewMainView(window, cfg.DefaultQuality)
	view.SetMinContentSize(fyne.NewSize(cfg.MinWindowWidth, cfg.MinWindowHeight))

	controller, err := preview.NewController(cfg, preview.Dependencies{
		Loader:    services.NewImageService(appLogger),
		Codec:     codec.NewAVIF(appLogger),
		Resampler: services.NewLanczosResampler(),
		Scheduler: gui.UIScheduler{},
		View:      view,
		Logger:    appLogger,
	})
	if err != nil {
		return nil, err
	}

	view.Bind(controller, gui.NewSystemClipboard(appLogger), appLogger)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		cfg:        cfg,
		controller: controller,
		view:       view,
		shutdown:   shutdown.NewManager(appLogger),
	}
	application.shutdown.Register(controller)
	application.setupWindowEvents()

	appLogger.Info("Application", "initialized", map[string]interface{}{
		"preview_effort": cfg.PreviewEffort,
		"save_effort":    cfg.SaveEffort,
		"debounce_ms":    cfg.Debounce.Milliseconds(),
	})

	return application, nil
}

// Run shows the window and blocks until the app quits.
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.quit)
	})

	a.window.Show()
	a.fyneApp.Run()

	a.logger.Info("Application", "terminated", nil)
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.quit()
	})
}

// quit must run on the UI goroutine.
func (a *Application) quit() {
	a.shutdown.Shutdown()
	a.fyneApp.Quit()
}
