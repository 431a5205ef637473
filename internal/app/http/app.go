package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	jwtlib "tirage/internal/lib/jwt"
	"tirage/internal/lib/logger/sl"
	mw "tirage/internal/middleware"
	httprouters "tirage/internal/transport/http"
	"tirage/internal/transport/http/dto/response"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	tokens  mw.TokenVerifier
	host    string
	port    string
}

func New(log *slog.Logger, tokens mw.TokenVerifier, host, port string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(mw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	// Unmatched routes answer with the endpoint catalogue pointer instead
	// of echo's default body. Everything else unhandled is a plain 500.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
		}

		switch code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			_ = c.JSON(code, response.ErrEndpointNotFound)
		default:
			log.Error("unhandled error",
				slog.String("URI", c.Request().RequestURI),
				sl.Err(err),
			)
			_ = c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		tokens:  tokens,
		host:    host,
		port:    port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf("%s:%s", s.host, s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping http server", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// BuildRouters mounts the route table. Reads stay public the way the
// original service shipped them; every mutation and the exports sit behind
// an access token. The refresh and logout endpoints do their own token
// handling, an access gate there would reject the refresh token or an
// expired token being logged out.
func (s *Server) BuildRouters() {
	authMW := mw.Auth(s.log, s.tokens, jwtlib.KindAccess)

	s.e.GET("/", s.routers.Home)
	s.e.GET("/health", s.routers.Health)
	s.e.GET("/status", s.routers.SystemStatus)

	authGroup := s.e.Group("/auth")
	{
		authGroup.POST("/register", s.routers.Register)
		authGroup.POST("/login", s.routers.Login)
		authGroup.POST("/refresh", s.routers.RefreshToken)
		authGroup.POST("/logout", s.routers.Logout)
	}

	participants := s.e.Group("/participants")
	{
		participants.GET("", s.routers.ListParticipants)
		participants.POST("", s.routers.AddParticipant, authMW)
		participants.POST("/bulk", s.routers.AddParticipantsBulk, authMW)
		participants.DELETE("/:numero", s.routers.DeleteParticipant, authMW)
	}

	gifts := s.e.Group("/gifts")
	{
		gifts.GET("", s.routers.ListGifts)
		gifts.POST("", s.routers.AddGift, authMW)
		gifts.POST("/bulk", s.routers.AddGiftsBulk, authMW)
		gifts.DELETE("/:gift", s.routers.DeleteGift, authMW)
	}

	s.e.POST("/associate", s.routers.Associate, authMW)
	s.e.POST("/api/associate", s.routers.DrawCouples, authMW)
	s.e.GET("/associations", s.routers.ListAssociations)
	s.e.DELETE("/associations/:participant", s.routers.DeleteAssociation, authMW)
	s.e.DELETE("/reset", s.routers.Reset, authMW)

	export := s.e.Group("/export", authMW)
	{
		export.GET("/csv", s.routers.ExportCSV)
		export.GET("/pdf", s.routers.ExportPDF)
	}

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	s.e.GET("/swagger/*", echoSwagger.WrapHandler)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
