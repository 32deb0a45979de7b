package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL
	"github.com/maynagashev/pagevault/internal/handlers"
	appmiddleware "github.com/maynagashev/pagevault/internal/middleware"
	"github.com/maynagashev/pagevault/internal/repository"
	"github.com/maynagashev/pagevault/internal/services"
	"github.com/maynagashev/pagevault/internal/storage"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second // Откат и дифф больших страниц занимают время
	defaultIdleTimeout  = 30 * time.Second

	minioUseSSL = false // Для локальной разработки
)

// Переменная для подмены конструктора БД в тестах.
var newPostgresDB = repository.NewPostgresDB

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db             *sqlx.DB
	fileStorage    storage.FileStorage // Используем интерфейс
	authHandler    *handlers.AuthHandler
	pageHandler    *handlers.PageHandler
	versionHandler *handlers.VersionHandler
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1) // Выход с кодом ошибки
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера PageVault...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	// Настройка роутера
	r := setupRouter(cfg, deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)
	log.Printf("Используется сертификат: %s", cfg.CertFile)
	log.Printf("Каталог рабочих файлов страниц: %s", cfg.ContentDir)

	// Запускаем сервер с TLS
	if err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска HTTPS-сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	// 1. Подключение к БД
	deps.db, err = newPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	log.Println("Соединение с БД успешно установлено.")

	// 2. Каталог рабочих файлов страниц
	if err = os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		closeDB(deps.db)
		return nil, fmt.Errorf("ошибка создания каталога рабочих файлов '%s': %w", cfg.ContentDir, err)
	}

	// 3. Инициализация клиента MinIO
	minioCfg := storage.MinioConfig{
		Endpoint:        cfg.MinioEndpoint,
		AccessKeyID:     cfg.MinioUser,
		SecretAccessKey: cfg.MinioPassword,
		UseSSL:          minioUseSSL,
		BucketName:      cfg.MinioBucket,
	}
	deps.fileStorage, err = storage.NewMinioClient(minioCfg)
	if err != nil {
		closeDB(deps.db)
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// 4. Создание репозиториев
	userRepo := repository.NewPostgresUserRepository(deps.db)
	pageRepo := repository.NewPostgresPageRepository(deps.db)
	versionRepo := repository.NewPostgresPageVersionRepository(deps.db)

	// 5. Создание сервисов
	// Блокировки страниц общие: снос страницы сериализуется со снимками и откатами
	locks := services.NewPageLocks()
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	pageService := services.NewPageService(pageRepo, versionRepo, deps.fileStorage, cfg.ContentDir, locks)
	versionService := services.NewVersionService(pageRepo, versionRepo, deps.fileStorage, cfg.ContentDir, locks)

	// 6. Создание обработчиков
	deps.authHandler = handlers.NewAuthHandler(authService)
	deps.pageHandler = handlers.NewPageHandler(pageService)
	deps.versionHandler = handlers.NewVersionHandler(versionService)

	return deps, nil
}

// closeDB закрывает соединение с БД при ошибке инициализации других зависимостей.
func closeDB(db *sqlx.DB) {
	if closeErr := db.Close(); closeErr != nil {
		log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
	}
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(cfg *config, deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Маршруты --- //
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	// Определяем базовый маршрут /api
	r.Route("/api", func(r chi.Router) {
		// Публичные маршруты (регистрация, вход)
		r.Post("/register", deps.authHandler.Register)
		r.Post("/login", deps.authHandler.Login)

		// Приватные маршруты (требуют аутентификации)
		r.Group(func(r chi.Router) {
			// Применяем middleware аутентификации ко всей группе
			r.Use(appmiddleware.NewAuthenticator(cfg.JWTSecret))

			// Маршруты для работы со страницами
			r.Route("/pages", func(r chi.Router) {
				r.Get("/", deps.pageHandler.List)
				r.Post("/", deps.pageHandler.Create)
				r.Get("/{pageID}", deps.pageHandler.Get)
				r.Delete("/{pageID}", deps.pageHandler.Delete)
			})

			// Маршруты для работы с версиями страниц
			r.Route("/versions/{pageID}", func(r chi.Router) {
				r.Get("/", deps.versionHandler.List)
				r.Post("/", deps.versionHandler.Create)
				r.Route("/{versionID}", func(r chi.Router) {
					r.Get("/", deps.versionHandler.Get)
					r.Get("/preview", deps.versionHandler.Preview)
					r.Get("/diff", deps.versionHandler.Diff)
					r.Post("/rollback", deps.versionHandler.Rollback)
					r.Patch("/", deps.versionHandler.Update)
					r.Delete("/", deps.versionHandler.Delete)
				})
			})
		})
	})
	return r
}
