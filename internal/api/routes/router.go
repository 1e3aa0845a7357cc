package routes

import (
	"github.com/formforge/formforge/internal/api/handlers"
	"github.com/formforge/formforge/internal/api/middleware"
	"github.com/formforge/formforge/internal/application"
	"github.com/formforge/formforge/internal/repository"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine) {
	// init
	repos_instance := repository.New()
	services_instance := application.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	// auth
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	auth := r.Group("/auth")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/status", handlers.AuthStatusHandler)
		auth.PUT("/password", handlers_instance.User.ChangePassword)
	}

	// the form builder / renderer API is public: end users submit to
	// published forms without an account
	api := r.Group("/api")
	{
		forms := api.Group("/forms")
		{
			forms.GET("", handlers_instance.Form.ListForms)
			forms.GET("/slug/:slug", handlers_instance.Form.GetFormBySlug)
			forms.GET("/:id", handlers_instance.Form.GetFormByID)
			forms.POST("", handlers_instance.Form.CreateForm)
			forms.PUT("/:id", handlers_instance.Form.UpdateForm)
			forms.DELETE("/:id", handlers_instance.Form.DeleteForm)
		}

		submissions := api.Group("/submissions")
		{
			submissions.GET("", handlers_instance.Submission.ListSubmissions)
			submissions.GET("/export", handlers_instance.Submission.ExportSubmissions)
			submissions.GET("/:id", handlers_instance.Submission.GetSubmissionByID)
			submissions.POST("", handlers_instance.Submission.CreateSubmission)
			submissions.DELETE("/:id", handlers_instance.Submission.DeleteSubmission)
		}
		// legacy entry point kept for older renderer builds
		api.POST("/form-submissions", handlers_instance.Submission.CreateSubmission)

		api.GET("/stats", handlers_instance.Stats.GetStats)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
