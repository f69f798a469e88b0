package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"exam-service/internal/db"
	"exam-service/internal/event"
	"exam-service/internal/fixtures"
	"exam-service/internal/handlers"
	"exam-service/internal/repository"
	"exam-service/internal/service"
	"exam-service/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	// Attempt storage. Mongo when configured, in-memory otherwise.
	var attemptStore repository.AttemptStore
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		db.InitMongo(mongoURI)
		attemptStore = repository.NewAttemptRepository(db.Client.Database("exam_service"))
	} else {
		log.Println("MONGO_URI not set, attempts are kept in memory")
		attemptStore = repository.NewMemoryAttemptStore(nil)
	}

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.Publisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, exam events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories seeded from the built-in fixtures
	questionRepo := repository.NewQuestionRepository(fixtures.Questions())
	catalog := repository.NewTestCatalog(fixtures.Tests(), fixtures.Configs())
	userRepo := repository.NewUserRepository(fixtures.Users())

	// Services and handlers
	builder := session.NewBuilder(catalog, questionRepo)
	sessionService := service.NewSessionService(builder, attemptStore)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	catalogService := service.NewCatalogService(catalog)
	testHandler := handlers.NewTestHandler(catalogService)

	questionHandler := handlers.NewQuestionHandler(questionRepo)

	attemptService := service.NewAttemptService(attemptStore)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	userService := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(userService)

	publicTest := r.Group("/public/exam/test")
	{
		publicTest.GET("/", testHandler.ListTests)
		publicTest.GET("/:id", testHandler.GetTest)
		publicTest.GET("/:id/config", testHandler.GetTestConfig)
	}

	publicQuestion := r.Group("/public/exam/question")
	{
		publicQuestion.GET("/", questionHandler.SampleQuestions)
		publicQuestion.GET("/:id", questionHandler.GetQuestion)
		publicQuestion.GET("/subjects", questionHandler.ListSubjects)
		publicQuestion.GET("/subjects/:subject/topics", questionHandler.ListTopics)
	}

	publicUser := r.Group("/public/exam/user")
	{
		publicUser.POST("/login", authHandler.Login)
		publicUser.GET("/:id", authHandler.GetUser)
		publicUser.GET("/:id/attempts", func(c *gin.Context) {
			attemptHandler.GetAttemptsByUser(c)
			if publisher != nil {
				publisher.Publish("exam.user.attempts_requested", gin.H{"id": c.Param("id")})
			}
		})
		publicUser.GET("/:id/stats", attemptHandler.GetUserStats)
	}

	publicAttempt := r.Group("/public/exam/attempt")
	{
		publicAttempt.GET("/test/:id", attemptHandler.GetAttemptsByTest)
	}

	setupSessionRoutes(r, sessionHandler, publisher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func setupSessionRoutes(r *gin.Engine, sessionHandler *handlers.SessionHandler, publisher *event.Publisher) {
	protectedSession := r.Group("/protected/exam/session")

	protectedSession.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	{
		protectedSession.POST("/", func(c *gin.Context) {
			sessionHandler.StartSession(c)
			if publisher != nil {
				publisher.Publish("exam.session.started", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protectedSession.GET("/", sessionHandler.GetSession)

		protectedSession.POST("/answer", func(c *gin.Context) {
			sessionHandler.SaveAnswer(c)
			if publisher != nil {
				publisher.Publish("exam.answer.saved", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protectedSession.POST("/review", sessionHandler.MarkForReview)
		protectedSession.POST("/navigate", sessionHandler.Navigate)
		protectedSession.POST("/navigate-section", sessionHandler.NavigateSection)
		protectedSession.POST("/tick", sessionHandler.Tick)

		protectedSession.POST("/submit", func(c *gin.Context) {
			sessionHandler.SubmitSession(c)
			if publisher != nil {
				publisher.Publish("exam.session.completed", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protectedSession.POST("/abandon", func(c *gin.Context) {
			sessionHandler.AbandonSession(c)
			if publisher != nil {
				publisher.Publish("exam.session.abandoned", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}
}
