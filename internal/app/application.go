package app

import (
	"fmt"
	"runtime"

	"data-streams/internal/config"
	"data-streams/internal/controllers"
	"data-streams/internal/logger"
	"data-streams/internal/models"
	"data-streams/internal/services"
	"data-streams/internal/shutdown"
	"data-streams/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Data Streams App"
	AppID      = "com.datastreams.viewer"
	AppVersion = "1.0.0"
)

// Application wires the document models, services, controller and view together
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	controller *controllers.MainController
	view       *views.MainView

	documentService *services.DocumentService
	repository      *models.DocumentRepository

	shutdown *shutdown.Manager
}

// NewApplication creates the Fyne app and everything it displays
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	return newApplication(fyneApp, cfg, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.Nop()
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight),
		"go_version":  runtime.Version(),
		"log_level":   cfg.LogLevel,
	})

	repository := models.NewDocumentRepository()
	loader := services.NewFileLoader(log)
	documentService := services.NewDocumentService(loader, repository, log)

	controller := controllers.NewMainController(documentService, log)
	view := views.NewMainView(window)
	controller.SetMainView(view)
	controller.SetConfirmQuit(cfg.ConfirmQuit)

	application := &Application{
		fyneApp:         fyneApp,
		window:          window,
		logger:          log,
		config:          cfg,
		controller:      controller,
		view:            view,
		documentService: documentService,
		repository:      repository,
		shutdown:        shutdown.NewManager(log),
	}

	// Registered first so the UI goes away after everything else has stopped
	application.shutdown.Register(shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))
	application.shutdown.Register(controller)

	controller.SetQuitFunc(application.Quit)
	application.setupWindowEvents()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.controller.Quit()
	})
}

// Run shows the window and blocks until the application exits
func (a *Application) Run() error {
	a.shutdown.Listen()

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
	return nil
}

// Quit shuts every component down and closes the application
func (a *Application) Quit() {
	a.shutdown.Shutdown()
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}
