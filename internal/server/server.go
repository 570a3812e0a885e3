package server

import (
	"beauty-parlour-api/internal/config"
	"beauty-parlour-api/internal/handler"
	"beauty-parlour-api/internal/middleware"
	"beauty-parlour-api/internal/repository"
	"beauty-parlour-api/internal/service"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo               *echo.Echo
	cfg                *config.Config
	userRepo           repository.UserRepository
	authHandler        *handler.AuthHandler
	paymentHandler     *handler.PaymentHandler
	appointmentHandler *handler.AppointmentHandler
	contentHandler     *handler.ContentHandler
	courseHandler      *handler.CourseHandler
}

func NewServer(
	cfg *config.Config,
	userRepo repository.UserRepository,
	userService service.UserService,
	paymentService service.PaymentService,
	appointmentService service.AppointmentService,
	contentService service.ContentService,
) *Server {
	e := echo.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:               e,
		cfg:                cfg,
		userRepo:           userRepo,
		authHandler:        handler.NewAuthHandler(userService),
		paymentHandler:     handler.NewPaymentHandler(paymentService),
		appointmentHandler: handler.NewAppointmentHandler(appointmentService),
		contentHandler:     handler.NewContentHandler(contentService),
		courseHandler:      handler.NewCourseHandler(userService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	auth := middleware.AuthMiddleware(s.cfg.JWT.Secret)
	subscribed := middleware.RequireSubscription(s.userRepo)

	// -------- auth --------
	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.authHandler.Register)
	authGroup.POST("/login", s.authHandler.Login)
	authGroup.GET("/me", s.authHandler.Me, auth)

	// -------- payments --------
	payments := api.Group("/payments", auth)
	payments.POST("/create-order", s.paymentHandler.CreateOrder)
	payments.POST("/verify", s.paymentHandler.VerifyPayment)

	// -------- appointments --------
	api.POST("/appointments", s.appointmentHandler.Create)
	api.GET("/appointments", s.appointmentHandler.List)

	// -------- gated course content --------
	content := api.Group("/content")
	content.GET("/books", s.contentHandler.GetBooks, auth, subscribed)
	content.GET("/tutorials", s.contentHandler.GetTutorials, auth, subscribed)
	content.POST("", s.contentHandler.Add)

	// -------- courses --------
	api.GET("/courses/my-course", s.courseHandler.MyCourse, auth)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
