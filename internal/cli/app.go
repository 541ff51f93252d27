package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/dmitrijs2005/novabiz/internal/assistant"
	"github.com/dmitrijs2005/novabiz/internal/config"
	"github.com/dmitrijs2005/novabiz/internal/logging"
	"github.com/dmitrijs2005/novabiz/internal/models"
	"github.com/dmitrijs2005/novabiz/internal/services"
	"github.com/dmitrijs2005/novabiz/internal/store"

	_ "modernc.org/sqlite"
)

// greeting opens every chat transcript.
const greeting = "Hello! I am Nova, your startup consultant. How can I help you build something amazing today?"

// replyGenerator is the slice of the assistant client the views need.
type replyGenerator interface {
	Generate(ctx context.Context, prompt string) string
}

type App struct {
	config      *config.Config
	log         logging.Logger
	session     *services.Session
	authService services.AuthService
	taskService services.TaskService
	postService services.PostService
	assistant   replyGenerator
	reader      *bufio.Reader

	// chat transcript lives in memory only, for the lifetime of the app
	transcript []models.ChatMessage
	busy       bool
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := store.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	st := store.NewSQLiteStore(db)

	session := services.NewSession(st, log)
	if err := session.Load(ctx); err != nil {
		return nil, err
	}

	users := services.NewUserService(st)
	as := services.NewAuthService(st, users, session)
	ts := services.NewTaskService(st)
	ps := services.NewPostService(st)
	gen := assistant.NewClient(cfg.AssistantEndpoint, cfg.AssistantAPIKey, cfg.AssistantModel, cfg.RequestTimeout, log)

	return &App{
		config:      cfg,
		log:         log,
		session:     session,
		authService: as,
		taskService: ts,
		postService: ps,
		assistant:   gen,
		reader:      bufio.NewReader(os.Stdin),
		transcript: []models.ChatMessage{
			{Role: models.RoleAssistant, Content: greeting, Timestamp: time.Now().UnixMilli()},
		},
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}
