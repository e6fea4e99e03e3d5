package app

import (
	"institute_backend/docs"
	"institute_backend/internal/config"
	"institute_backend/internal/middleware"
	"institute_backend/internal/model"
	"institute_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerStaffRoutes(router, c, cfg)
	a.registerStudentRoutes(router, c, cfg)
}

// registerPublicRoutes covers everything the institute website serves
// without a login: courses, gallery, enquiry form, certificate
// verification and both login endpoints.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api/v1")
	{
		public.GET("/health", c.health.Health)

		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.POST("/student/auth/register", c.studentAuth.Register)
		public.POST("/student/auth/login", c.studentAuth.Login)

		public.GET("/public/courses", c.course.ListPublic)
		public.GET("/public/gallery", c.gallery.ListPublic)
		public.POST("/public/enquiries", c.enquiry.Create)
		public.GET("/public/certificates/verify/:code", c.certificate.VerifyByCode)
		public.POST("/public/certificates/verify", c.certificate.VerifyByEnrollment)
	}
}

func (a *App) registerStaffRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	staff := router.Group("/api/v1")
	staff.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Staff))
	{
		staff.GET("/auth/me", c.auth.Me)
		staff.GET("/dashboard/summary", c.dashboard.Summary)

		staff.GET("/students", c.student.List)
		staff.POST("/students", c.student.Create)
		staff.GET("/students/:id", c.student.Get)
		staff.PUT("/students/:id", c.student.Update)
		staff.POST("/students/:id/photo", c.student.UploadPhoto)
		staff.POST("/students/:id/password", c.student.SetPassword)

		staff.GET("/trades", c.trade.List)
		staff.POST("/trades", c.trade.Create)
		staff.GET("/trades/:id", c.trade.Get)
		staff.PUT("/trades/:id", c.trade.Update)

		staff.GET("/courses", c.course.List)
		staff.POST("/courses", c.course.Create)
		staff.GET("/courses/:id", c.course.Get)
		staff.PUT("/courses/:id", c.course.Update)

		staff.GET("/fees", c.fee.List)
		staff.POST("/fees", c.fee.Create)
		staff.GET("/fees/:id", c.fee.Get)
		staff.PUT("/fees/:id", c.fee.Update)

		staff.GET("/expenses", c.expense.List)
		staff.POST("/expenses", c.expense.Create)
		staff.GET("/expenses/:id", c.expense.Get)
		staff.PUT("/expenses/:id", c.expense.Update)

		staff.GET("/enquiries", c.enquiry.List)
		staff.GET("/enquiries/:id", c.enquiry.Get)

		staff.GET("/certificates", c.certificate.List)
		staff.POST("/certificates", c.certificate.Create)
		staff.GET("/certificates/:id", c.certificate.Get)
		staff.PUT("/certificates/:id", c.certificate.Update)

		staff.GET("/gallery", c.gallery.List)
		staff.POST("/gallery", c.gallery.Upload)
		staff.PUT("/gallery/:id", c.gallery.Update)

		staff.GET("/exams", c.exam.List)
		staff.POST("/exams", c.exam.Create)
		staff.GET("/exams/:id", c.exam.Get)
		staff.PUT("/exams/:id", c.exam.Update)
		staff.GET("/exams/:id/questions", c.exam.ListQuestions)
		staff.POST("/exams/:id/questions", c.exam.CreateQuestion)
		staff.PUT("/questions/:question_id", c.exam.UpdateQuestion)
		staff.POST("/questions/:question_id/options", c.exam.AddOption)
		staff.PUT("/questions/:question_id/options/:option_id", c.exam.UpdateOption)

		// Destructive operations stay admin only.
		adminOnly := staff.Group("/")
		adminOnly.Use(middleware.RoleMiddleware(model.Admin))
		{
			adminOnly.DELETE("/students/:id", c.student.Delete)
			adminOnly.DELETE("/trades/:id", c.trade.Delete)
			adminOnly.DELETE("/courses/:id", c.course.Delete)
			adminOnly.DELETE("/fees/:id", c.fee.Delete)
			adminOnly.DELETE("/expenses/:id", c.expense.Delete)
			adminOnly.DELETE("/enquiries/:id", c.enquiry.Delete)
			adminOnly.DELETE("/certificates/:id", c.certificate.Delete)
			adminOnly.DELETE("/gallery/:id", c.gallery.Delete)
			adminOnly.DELETE("/exams/:id", c.exam.Delete)
			adminOnly.DELETE("/questions/:question_id", c.exam.DeleteQuestion)
			adminOnly.DELETE("/questions/:question_id/options/:option_id", c.exam.DeleteOption)
		}
	}
}

func (a *App) registerStudentRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	student := router.Group("/api/v1/student")
	student.Use(middleware.StudentAuthMiddleware(cfg))
	{
		student.GET("/exams", c.studentExam.ListAvailable)
		student.POST("/exams/:id/start", c.studentExam.Start)
		student.POST("/exams/:id/submit", c.studentExam.Submit)
		student.GET("/attempts", c.studentExam.ListAttempts)
	}
}
