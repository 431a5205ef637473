package app

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	httpapp "tirage/internal/app/http"
	"tirage/internal/config"
	jwtlib "tirage/internal/lib/jwt"
	"tirage/internal/repository"
	association "tirage/internal/services/association_service"
	"tirage/internal/services/auth"
	draw "tirage/internal/services/draw_service"
	export "tirage/internal/services/export_service"
	pool "tirage/internal/services/pool_service"
	tokens "tirage/internal/services/token_service"
	redisapp "tirage/internal/storage/redis"
	httprouters "tirage/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	repo  *repository.Repository
	redis *redisapp.Client
}

// New connects the storage, assembles every service and returns the app
// with its HTTP server ready to run. Panics when the database is not
// reachable, there is nothing to serve without it.
func New(log *slog.Logger, cfg *config.Config) *App {
	repo, err := repository.NewRepository(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	var (
		redisClient *redisapp.Client
		revocations repository.RevocationStore
	)

	if cfg.Redis.RedisAddr != "" {
		redisClient = redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		revocations = repository.NewRedisRevocationRepo(redisClient)
	} else {
		revocations = repository.NewMemoryRevocationRepo()
	}

	manager := jwtlib.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	tokenService := tokens.NewTokenService(log, manager, revocations)

	authService := auth.New(log, repo.Admins, repo.Admins, tokenService)
	poolService := pool.NewPoolService(log, repo.Participants, repo.Gifts, repo.Associations, cfg.Ingest.ParticipantAliases)

	// The draw-running services lock their generators independently, so
	// each gets its own.
	associationService := association.NewAssociationService(
		log,
		repo.Participants,
		repo.Gifts,
		repo.Associations,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	drawService := draw.NewDrawService(log, rand.New(rand.NewSource(time.Now().UnixNano())))
	exportService := export.NewExportService(log, repo.Associations)

	routers := httprouters.NewRouter(log, authService, poolService, associationService, drawService, exportService)

	return &App{
		HTTPServer: httpapp.New(log, tokenService, cfg.HTTP.Host, cfg.HTTP.Port, routers),
		repo:       repo,
		redis:      redisClient,
	}
}

// Stop shuts the HTTP server down and releases the storage connections.
func (a *App) Stop() {
	_ = a.HTTPServer.Stop()

	a.repo.Close()

	if a.redis != nil {
		_ = a.redis.Close()
	}
}
