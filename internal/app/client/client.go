package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/exp/slog"

	"travelmate/internal/app/client/config"
	"travelmate/internal/domain/assistant"
	"travelmate/internal/domain/chat"
	"travelmate/internal/domain/document"
	"travelmate/internal/domain/note"
	"travelmate/internal/domain/session"
	"travelmate/internal/domain/trip"
	"travelmate/internal/domain/user"
	"travelmate/internal/domain/wishlist"
	"travelmate/internal/infrastructure/cache"
	"travelmate/internal/infrastructure/docstore"
	"travelmate/internal/infrastructure/llm"
	"travelmate/internal/infrastructure/storage/remote"
	"travelmate/internal/infrastructure/travelapi"
)

// Storage - локальное хранилище клиента
type Storage interface {
	session.Repository
	Close() error
}

// App связывает сервисы клиента с хранилищем документов, внешними API и локальной сессией
type App struct {
	config  *config.Config
	log     *slog.Logger
	storage Storage
	store   *docstore.Client
	redis   *cache.Redis

	Session   *session.Service
	Users     *user.Service
	Notes     *note.Service
	Wishlist  *wishlist.Service
	Chat      *chat.Service
	Assistant *assistant.Service
	Trip      *trip.Service
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		log.Warn("Не удалось создать директорию данных", "dir", cfg.DataDir, "error", err)
	}

	// Инициализируем локальное хранилище (используем SQLite)
	var storage Storage
	sqliteStorage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		storage = NewMemoryStorage()
	} else {
		storage = sqliteStorage
	}

	httpClient := docstore.NewHTTPClient(cfg.HTTPTimeout)
	store := docstore.New(docstore.BaseURL(cfg.StoreURL, cfg.ProjectID), httpClient, log)

	app := &App{
		config:  cfg,
		log:     log,
		storage: storage,
		store:   store,
	}

	responses := app.setupCache(ctx)

	nominatim := travelapi.NewNominatim(cfg.NominatimURL, httpClient, log).WithCache(responses, cfg.CacheTTL)

	app.Session = session.NewService(storage, log)
	app.Users = user.NewService(
		remote.NewUserRepository(store.Collection(document.CollectionUsers)),
		user.NewPasswordValidator(passwordOptions(cfg)...),
		log,
	)
	app.Notes = note.NewService(remote.NewNoteRepository(store.Collection(document.CollectionNotes), log), nominatim, log)
	app.Wishlist = wishlist.NewService(remote.NewWishlistRepository(store.Collection(document.CollectionWishlist), log), nominatim, log)
	app.Chat = chat.NewService(remote.NewChatRepository(store.Collection(document.CollectionChat)), log)
	app.Assistant = assistant.NewService(app.Chat, app.Notes, app.Wishlist, app.generator(httpClient), log)
	app.Trip = trip.NewService(trip.Deps{
		Geocoder:  nominatim,
		Timezones: travelapi.NewGeoNames(cfg.GeoNamesURL, cfg.GeoNamesUsername, httpClient, log),
		Countries: travelapi.NewRestCountries(cfg.RestCountriesURL, httpClient, log),
		Rates:     travelapi.NewExchange(cfg.ExchangeURL, httpClient, log),
		Clock:     travelapi.NewWorldTime(cfg.WorldTimeURL, httpClient, log),
		Commenter: app.Assistant,
	}, cfg.BaseCurrency, log)

	return app, nil
}

// passwordOptions переводит настройки паролей в опции валидатора.
// Нулевая длина оставляет user.MinPasswordLen.
func passwordOptions(cfg *config.Config) []user.ValidatorOption {
	var opts []user.ValidatorOption
	if cfg.MinPasswordLen > 0 {
		opts = append(opts, user.WithMinPasswordLen(cfg.MinPasswordLen))
	}
	if cfg.StrongPasswords {
		opts = append(opts, user.WithStrongPassword())
	}
	return opts
}

// setupCache подключает Redis, если он настроен, иначе кэширует в памяти процесса
func (a *App) setupCache(ctx context.Context) cache.Cache {
	if a.config.RedisAddr == "" {
		return cache.NewMemory()
	}

	r, err := cache.NewRedis(ctx, a.config.RedisAddr, a.config.RedisPassword, 0)
	if err != nil {
		a.log.Warn("Redis недоступен, используем кэш в памяти", "addr", a.config.RedisAddr, "error", err)
		return cache.NewMemory()
	}
	a.redis = r
	return r
}

// generator возвращает nil, если ассистент не настроен: тогда чат отвечает FailureMessage
func (a *App) generator(httpClient *http.Client) assistant.Generator {
	factory := &llm.Factory{
		RelayURL:      a.config.AssistantURL,
		OpenaiAPIKey:  a.config.OpenaiAPIKey,
		OpenaiBaseURL: a.config.OpenaiBaseURL,
		OpenaiModel:   a.config.OpenaiModel,
		HTTPClient:    httpClient,
	}

	client, err := factory.CreateClient(a.config.AssistantProvider, a.log)
	if err != nil {
		a.log.Warn("Ассистент не настроен", "provider", a.config.AssistantProvider, "error", err)
		return nil
	}
	return llm.NewGenerator(client)
}

// Register создает аккаунт и сразу открывает сессию
func (a *App) Register(ctx context.Context, login, password, confirm string) (user.User, error) {
	u, err := a.Users.Register(ctx, login, password, confirm)
	if err != nil {
		return user.User{}, err
	}
	if err := a.Session.Set(ctx, session.Session{UserID: u.ID}); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (a *App) Login(ctx context.Context, login, password string) (user.User, error) {
	u, err := a.Users.Authenticate(ctx, login, password)
	if err != nil {
		return user.User{}, err
	}
	if err := a.Session.Set(ctx, session.Session{UserID: u.ID}); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (a *App) Logout(ctx context.Context) error {
	return a.Session.Clear(ctx)
}

// CurrentSession возвращает сессию или session.ErrNoSession
func (a *App) CurrentSession(ctx context.Context) (session.Session, error) {
	return a.Session.Get(ctx)
}

// WhoAmI возвращает текущего пользователя. Если аккаунт удален из хранилища,
// сессия сбрасывается.
func (a *App) WhoAmI(ctx context.Context) (user.User, error) {
	sess, err := a.CurrentSession(ctx)
	if err != nil {
		return user.User{}, err
	}

	u, err := a.Users.Get(ctx, sess)
	if errors.Is(err, user.ErrUserNotFound) {
		if cerr := a.Session.Clear(ctx); cerr != nil {
			a.log.Warn("Не удалось сбросить сессию", "error", cerr)
		}
		return user.User{}, session.ErrNoSession
	}
	return u, err
}

// CheckConnection проверяет доступность хранилища документов
func (a *App) CheckConnection(ctx context.Context) error {
	if err := a.store.Ping(ctx, document.CollectionUsers); err != nil {
		return fmt.Errorf("хранилище недоступно: %w", err)
	}
	return nil
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	errs = append(errs, a.storage.Close())
	return errors.Join(errs...)
}
