// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/runoshun/gantt/internal/chart"
	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/infra/config"
	"github.com/runoshun/gantt/internal/infra/logging"
	"github.com/runoshun/gantt/internal/infra/memstore"
	"github.com/runoshun/gantt/internal/interaction"
	"github.com/runoshun/gantt/internal/usecase"
)

// Config holds the paths the container was created from.
type Config struct {
	ConfigPath string // Local config file (default ./gantt.toml)
	TasksFile  string // YAML task file replacing configured seeds (optional)
	LogDir     string // Resolved log directory (empty = logging disabled)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	closer    interface{ Close() error }

	// Configuration
	Config Config
}

// New loads configuration, opens the log file and seeds the task sequence.
func New(cfg Config) (*Container, error) {
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = domain.LocalConfigName
	}

	loader := config.NewLoader(cfg.ConfigPath)
	appConfig, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.LogDir == "" {
		cfg.LogDir = appConfig.Log.Dir
	}
	if cfg.LogDir == "" {
		cfg.LogDir = config.DefaultLogDir()
	}
	logger := logging.New(cfg.LogDir, logging.ParseLevel(appConfig.Log.Level))

	c := &Container{
		Tasks:         memstore.New(),
		ConfigLoader:  loader,
		Logger:        logger,
		ConfigManager: config.NewManager(cfg.ConfigPath),
		AppConfig:     appConfig,
		closer:        logger,
		Config:        cfg,
	}

	seeds := appConfig.Tasks
	if cfg.TasksFile != "" {
		content, err := os.ReadFile(cfg.TasksFile)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("read task file: %w", err)
		}
		seeds, err = domain.ParseTaskSeeds(content)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("%s: %w", cfg.TasksFile, err)
		}
	}
	if _, err := c.SeedTasksUseCase().Execute(context.Background(), usecase.SeedTasksInput{Seeds: seeds}); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("seed tasks: %w", err)
	}

	for _, w := range appConfig.Warnings {
		logger.Warn("config", w)
	}
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(appConfig *domain.Config, tasks domain.TaskRepository, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Tasks:     tasks,
		Logger:    logger,
		AppConfig: appConfig,
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// Layout returns the chart geometry from config.
func (c *Container) Layout() chart.Layout {
	return chart.LayoutFromConfig(c.AppConfig.Chart)
}

// Renderer returns a chart renderer using the configured layout and palette.
func (c *Container) Renderer() *chart.Renderer {
	return chart.NewRenderer(c.Layout(), c.AppConfig.Colors)
}

// NewController returns an interaction controller over the task sequence.
func (c *Container) NewController() *interaction.Controller {
	return interaction.New(c.Tasks, c.Layout(), c.AppConfig.Drag.Mode, c.Logger)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Logger)
}

// SeedTasksUseCase returns a new SeedTasks use case.
func (c *Container) SeedTasksUseCase() *usecase.SeedTasks {
	return usecase.NewSeedTasks(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// RenderChartUseCase returns a new RenderChart use case.
func (c *Container) RenderChartUseCase() *usecase.RenderChart {
	return usecase.NewRenderChart(c.Tasks, c.Renderer())
}

// RenderChartUseCaseWithLayout returns a RenderChart use case drawing with
// the given geometry and the configured palette.
func (c *Container) RenderChartUseCaseWithLayout(layout chart.Layout) *usecase.RenderChart {
	return usecase.NewRenderChart(c.Tasks, chart.NewRenderer(layout, c.AppConfig.Colors))
}
