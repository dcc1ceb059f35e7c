package main

import (
	"fmt"
	"log"

	"studyport/internal/config"
	"studyport/internal/handlers"
	"studyport/internal/repository"
	"studyport/internal/services"
	"studyport/pkg/cloud"
	"studyport/pkg/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Открываем локальное хранилище — систему записи приложения
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	// Адрес облака из окружения переносится в настройки один раз,
	// дальше им управляет администратор через API
	if cfg.CloudEndpoint != "" {
		if current, err := db.GetSetting(database.SettingCloudEndpoint); err == nil && current == "" {
			if err := db.PutSetting(database.SettingCloudEndpoint, cfg.CloudEndpoint); err != nil {
				logger.Warn("failed to store cloud endpoint", zap.Error(err))
			}
		}
	}
	if cfg.FolderName != "" {
		if err := db.PutSetting(database.SettingFolderName, cfg.FolderName); err != nil {
			logger.Warn("failed to store folder name", zap.Error(err))
		}
	}

	// Создаем репозитории
	studentRepo := repository.NewStudentRepository(db.DB)
	resourceRepo := repository.NewBatchResourceRepository(db.DB)
	taskRepo := repository.NewAssessmentTaskRepository(db.DB)
	challengeRepo := repository.NewChallengeImageRepository(db.DB)
	syllabusRepo := repository.NewSyllabusPortionRepository(db.DB)
	markingRepo := repository.NewPeerMarkingRepository(db.DB)
	fileRepo := repository.NewFileRepository(db.DB)

	// Транспорт к облачному сервису
	cloudClient := cloud.NewClient(db, cfg.CloudSecret)

	// Создаем сервисы
	authService := services.NewAuthService(studentRepo, db)
	studentService := services.NewStudentService(studentRepo)
	syncService := services.NewSyncService(cloudClient, db, studentRepo, resourceRepo, taskRepo, challengeRepo, markingRepo, fileRepo, logger)
	recoveryService := services.NewRecoveryService(studentRepo, syncService, logger)
	quotaService := services.NewQuotaService(studentRepo)
	markingService := services.NewPeerMarkingService(markingRepo, syncService, logger)
	challengeService := services.NewChallengeService(challengeRepo, logger)

	// Создаем обработчики
	authHandler := handlers.NewAuthHandler(authService)
	studentHandler := handlers.NewStudentHandler(studentService, recoveryService, quotaService, cfg.AIDailyLimit, cfg.EmpowermentDailyLimit)
	resourceHandler := handlers.NewResourceHandler(resourceRepo, taskRepo, syllabusRepo, challengeService, markingService)
	syncHandler := handlers.NewSyncHandler(syncService, db)

	router := gin.Default()
	router.Use(handlers.CORSMiddleware())

	api := router.Group("/api")

	// Публичные маршруты
	public := api.Group("/public")
	{
		public.POST("/login", authHandler.Login)
		public.POST("/admin/login", authHandler.AdminLogin)
	}

	// Защищенные маршруты (требуют сессию)
	protected := api.Group("/")
	protected.Use(handlers.SessionMiddleware(authService))
	{
		protected.POST("/logout", authHandler.Logout)
		protected.GET("/profile", authHandler.Profile)

		// Запись ученика; чтение запускает самовосстановление
		protected.GET("/students/:id", studentHandler.GetStudent)
		protected.PUT("/students", studentHandler.SaveStudent)

		// Дневные квоты AI-функций
		protected.POST("/quota/:kind", studentHandler.CheckQuota)

		// Ресурсы, задания, программа
		protected.GET("/resources", resourceHandler.ListResources)
		protected.GET("/tasks", resourceHandler.ListTasks)
		protected.GET("/syllabus", resourceHandler.ListSyllabus)

		// Библиотека изображений
		protected.GET("/challenges", resourceHandler.ListChallengeImages)

		// Взаимная проверка
		protected.GET("/marking", resourceHandler.ListMarkingTasks)
		protected.POST("/marking/:id/advance", resourceHandler.AdvanceMarkingTask)

		// Синхронизация, доступная ученику
		protected.GET("/sync/ping", syncHandler.Ping)
		protected.POST("/sync/students/:id/push", syncHandler.PushStudent)
		protected.POST("/sync/students/:id/pull", syncHandler.PullStudent)
		protected.POST("/sync/reflections", syncHandler.LogReflection)
	}

	// Маршруты администратора
	admin := api.Group("/admin")
	admin.Use(handlers.SessionMiddleware(authService))
	admin.Use(handlers.AdminOnlyMiddleware())
	{
		admin.POST("/students", studentHandler.CreateStudent)
		admin.GET("/students", studentHandler.ListStudents)
		admin.DELETE("/students/:id", studentHandler.DeleteStudent)

		admin.POST("/resources", resourceHandler.SaveResource)
		admin.DELETE("/resources/:id", resourceHandler.DeleteResource)
		admin.POST("/tasks", resourceHandler.SaveTask)
		admin.DELETE("/tasks/:id", resourceHandler.DeleteTask)
		admin.POST("/syllabus", resourceHandler.SaveSyllabus)
		admin.DELETE("/syllabus/:id", resourceHandler.DeleteSyllabus)

		admin.POST("/challenges", resourceHandler.AddChallengeImage)
		admin.DELETE("/challenges/:id", resourceHandler.DeleteChallengeImage)
		admin.POST("/marking", resourceHandler.CreateMarkingTask)

		// Пакетная синхронизация
		admin.POST("/sync/resources/push", syncHandler.PushResources)
		admin.POST("/sync/resources/pull", syncHandler.PullResources)
		admin.POST("/sync/tasks/push", syncHandler.PushTasks)
		admin.POST("/sync/tasks/pull", syncHandler.PullTasks)
		admin.POST("/sync/challenges/push", syncHandler.PushChallenges)
		admin.POST("/sync/challenges/pull", syncHandler.PullChallenges)
		admin.POST("/sync/marking/push", syncHandler.PushMarking)
		admin.POST("/sync/marking/pull", syncHandler.PullMarking)
		admin.POST("/sync/batch/push", syncHandler.PushBatchStudents)
		admin.POST("/sync/batch/pull", syncHandler.PullBatchStudents)
		admin.POST("/sync/files/:id/upload", syncHandler.UploadFile)
		admin.POST("/sync/reflections/delete", syncHandler.DeleteReflection)

		// Резервные копии и перенос данных
		admin.POST("/backup", syncHandler.Backup)
		admin.POST("/restore", syncHandler.Restore)
		admin.GET("/export", syncHandler.Export)
		admin.POST("/import", syncHandler.Import)
		admin.POST("/reset", syncHandler.ResetDatabase)

		// Настройки
		admin.GET("/settings/:key", syncHandler.GetSetting)
		admin.PUT("/settings/:key", syncHandler.PutSetting)
	}

	// Запускаем сервер
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	logger.Info("starting studyport server", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
