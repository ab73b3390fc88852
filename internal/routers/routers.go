package routers

import (
	"net/http"
	"slices"

	_ "trivia-backend/docs"
	"trivia-backend/internal/handlers"
	"trivia-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Categories *handlers.CategoryHandler
	Questions  *handlers.QuestionHandler
	Quiz       *handlers.QuizHandler
}

func New(h Handlers, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery(handlers.AbortWithError))
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.NoRoute(func(c *gin.Context) {
		handlers.AbortWithError(c, http.StatusNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.AbortWithError(c, http.StatusMethodNotAllowed)
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	categories := r.Group("/categories")
	{
		categories.GET("", h.Categories.ListCategories)
		categories.GET("/:id", h.Categories.GetCategory)
		categories.GET("/:id/questions", h.Categories.GetCategory)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", h.Questions.ListQuestions)
		questions.POST("", h.Questions.CreateQuestion)
		questions.POST("/create", h.Questions.CreateQuestion)
		questions.POST("/search", h.Questions.SearchQuestions)
		questions.GET("/export", h.Questions.ExportQuestions)
		questions.GET("/:id", h.Questions.GetQuestion)
		questions.DELETE("/:id", h.Questions.DeleteQuestion)
	}

	r.POST("/quiz", h.Quiz.PlayQuiz)
	r.POST("/quizzes", h.Quiz.PlayQuiz)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
