package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/interviewprep-api/internal/config"
	"github.com/yourusername/interviewprep-api/internal/generator"
	"github.com/yourusername/interviewprep-api/internal/handler"
	"github.com/yourusername/interviewprep-api/internal/middleware"
	pgRepo "github.com/yourusername/interviewprep-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/interviewprep-api/internal/repository/redis"
	"github.com/yourusername/interviewprep-api/internal/seed"
	"github.com/yourusername/interviewprep-api/internal/service"
	"github.com/yourusername/interviewprep-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	knowledgeRepo := pgRepo.NewKnowledgeRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Посев базового набора вопросов (один раз, на пустой таблице)
	if err := seed.Run(questionRepo); err != nil {
		log.Printf("Failed to seed questions: %v", err)
		os.Exit(1)
	}

	// Инициализируем адаптер генеративного сервиса.
	// Секрет передаётся один раз; пустой ключ деградирует генерацию
	// до ошибки недоступности, а не роняет процесс.
	questionGenerator := generator.NewOpenAIGenerator(cfg.OpenAI)

	// Инициализируем сервисы
	exclusionResolver := service.NewExclusionResolver(questionRepo, knowledgeRepo, cacheRepo)
	questionService := service.NewQuestionService(
		questionRepo,
		exclusionResolver,
		questionGenerator,
		cacheRepo,
		time.Duration(cfg.OpenAI.TimeoutSec)*time.Second,
	)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, cacheRepo)
	statsService := service.NewStatsService(questionRepo, knowledgeRepo, cacheRepo)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService)
	knowledgeHandler := handler.NewKnowledgeHandler(knowledgeService)
	statsHandler := handler.NewStatsHandler(statsService)
	exportHandler := handler.NewExportHandler(questionRepo)

	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: SPA в разработке живёт на Vite-порту
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RequestID())

	// Статические файлы и страница дашборда
	router.StaticFS("/static", http.Dir(cfg.Server.StaticDir))
	router.GET("/dashboard", func(c *gin.Context) {
		c.File(filepath.Join(cfg.Server.StaticDir, "pages", "dashboard.html"))
	})

	// Основные маршруты (без версионирования, см. клиент SPA)
	router.GET("/question", rateLimiter.LimitByIP(middleware.QuestionRateLimitConfig()), questionHandler.GetQuestion)
	router.POST("/know-category", knowledgeHandler.KnowCategory)
	router.GET("/stats", statsHandler.GetStats)
	router.GET("/admin/questions/export", exportHandler.ExportQuestions)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
