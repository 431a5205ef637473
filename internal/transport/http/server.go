package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
	"tirage/internal/domain/models"
	"tirage/internal/domain/pairing"
	"tirage/internal/lib/ingest"
	"tirage/internal/lib/logger/sl"
	"tirage/internal/middleware"
	association "tirage/internal/services/association_service"
	"tirage/internal/services/auth"
	draw "tirage/internal/services/draw_service"
	pool "tirage/internal/services/pool_service"
	tokens "tirage/internal/services/token_service"
	"tirage/internal/transport/http/dto/request"
	"tirage/internal/transport/http/dto/response"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "tirage/docs"
)

const (
	serviceName = "Association API"
	apiVersion  = "1.0.0"

	// timestampLayout is the wire format for every timestamp field.
	timestampLayout = "2006-01-02T15:04:05"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (uuid.UUID, error)
	Login(ctx context.Context, username, password string) (*models.TokenPair, error)
	Admin(ctx context.Context, username string) (models.Admin, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

type PoolService interface {
	AddParticipant(ctx context.Context, name string) error
	AddParticipants(ctx context.Context, names []string) (models.BulkResult, error)
	IngestParticipantFile(ctx context.Context, filename string, r io.Reader) (models.BulkResult, error)
	ListParticipants(ctx context.Context) ([]string, error)
	RemoveParticipant(ctx context.Context, name string) error
	AddGift(ctx context.Context, number int64) error
	AddGifts(ctx context.Context, numbers []int64) (models.GiftBulkResult, error)
	ListGifts(ctx context.Context) ([]models.GiftView, error)
	RemoveGift(ctx context.Context, number int64) error
}

type AssociationService interface {
	Associate(ctx context.Context) (models.AssociateResult, error)
	List(ctx context.Context) ([]models.AssociationDetail, error)
	Dissociate(ctx context.Context, name string) error
	Status(ctx context.Context) (models.SystemStatus, error)
	Reset(ctx context.Context) (models.ResetReport, error)
}

type DrawService interface {
	Draw(input draw.DrawInput) (draw.DrawOutput, error)
}

type ExportService interface {
	CSV(ctx context.Context) ([]byte, string, error)
	PDF(ctx context.Context) ([]byte, string, error)
}

type Routers struct {
	log                *slog.Logger
	AuthService        AuthService
	PoolService        PoolService
	AssociationService AssociationService
	DrawService        DrawService
	ExportService      ExportService
}

func NewRouter(log *slog.Logger, authService AuthService, poolService PoolService, associationService AssociationService, drawService DrawService, exportService ExportService) *Routers {
	return &Routers{
		log:                log,
		AuthService:        authService,
		PoolService:        poolService,
		AssociationService: associationService,
		DrawService:        drawService,
		ExportService:      exportService,
	}
}

// Home godoc
// @Summary Page d'accueil avec documentation de l'API
// @Description Retourne le catalogue des endpoints disponibles
// @Tags systeme
// @Produce json
// @Success 200 {object} response.Home
// @Router / [get]
func (r *Routers) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Home{
		Message: "API d'association de participants et cadeaux",
		Version: apiVersion,
		Storage: "PostgreSQL Database",
		Endpoints: map[string]map[string]string{
			"participants": {
				"POST /participants":            "Ajouter un participant (auth requise)",
				"POST /participants/bulk":       "Ajouter plusieurs participants via JSON ou fichier (auth requise)",
				"GET /participants":             "Lister les participants",
				"DELETE /participants/{numero}": "Supprimer un participant (auth requise)",
			},
			"cadeaux": {
				"POST /gifts":          "Ajouter un cadeau (auth requise)",
				"POST /gifts/bulk":     "Ajouter plusieurs cadeaux (auth requise)",
				"GET /gifts":           "Lister les cadeaux",
				"DELETE /gifts/{gift}": "Supprimer un cadeau (auth requise)",
			},
			"associations": {
				"POST /associate":                    "Associer participants et cadeaux (auth requise)",
				"POST /api/associate":                "Tirage de couples hommes-femmes (auth requise)",
				"GET /associations":                  "Lister les associations",
				"DELETE /associations/{participant}": "Supprimer une association (auth requise)",
			},
			"auth": {
				"POST /auth/register": "Créer un compte administrateur",
				"POST /auth/login":    "Se connecter et obtenir un token",
				"POST /auth/refresh":  "Renouveler le token d'accès",
				"POST /auth/logout":   "Se déconnecter et révoquer les tokens",
			},
			"export": {
				"GET /export/csv": "Exporter les associations en CSV (auth requise)",
				"GET /export/pdf": "Exporter les associations en PDF (auth requise)",
			},
			"systeme": {
				"GET /":         "Documentation de l'API",
				"GET /health":   "Vérification de l'état de l'API",
				"GET /status":   "État complet du système",
				"DELETE /reset": "Réinitialiser toutes les données (auth requise)",
			},
		},
	})
}

// Health godoc
// @Summary Vérification de l'état de l'API
// @Tags systeme
// @Produce json
// @Success 200 {object} response.Health
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Health{
		Status:    "healthy",
		Service:   serviceName,
		Version:   apiVersion,
		Timestamp: time.Now().Format(timestampLayout),
	})
}

// SystemStatus godoc
// @Summary État complet du système
// @Description Retourne les pools de participants et cadeaux ainsi que les associations actives
// @Tags systeme
// @Produce json
// @Success 200 {object} response.SystemStatus
// @Failure 500 {object} response.ErrorResponse
// @Router /status [get]
func (r *Routers) SystemStatus(c echo.Context) error {
	const op = "http.routers.SystemStatus"

	status, err := r.AssociationService.Status(c.Request().Context())
	if err != nil {
		r.log.Error("failed to build status", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SystemStatus{
		Success:   true,
		Timestamp: time.Now().Format(timestampLayout),
		Status:    status,
	})
}

// Register godoc
// @Summary Créer un compte administrateur
// @Description Enregistre un nouvel administrateur et retourne sa fiche
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RegisterRequest true "Identifiants du compte"
// @Success 201 {object} response.AdminCreated
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/register [post]
func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(
		slog.String("op", op),
	)

	if c.Request().ContentLength == 0 {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidJSON)
	}

	var req request.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidJSON)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, response.ErrCredentialsRequired)
	}
	if utf8.RuneCountInString(username) < 3 {
		return c.JSON(http.StatusBadRequest, response.Error("Le nom d'utilisateur doit contenir au moins 3 caractères"))
	}
	if utf8.RuneCountInString(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, response.Error("Le mot de passe doit contenir au moins 6 caractères"))
	}

	if _, err := r.AuthService.Register(c.Request().Context(), username, req.Password); err != nil {
		if errors.Is(err, auth.ErrAdminExists) {
			log.Warn("admin already exists", slog.String("username", username))
			return c.JSON(http.StatusBadRequest, response.Error(fmt.Sprintf("L'utilisateur '%s' existe déjà", username)))
		}

		log.Error("registration failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	admin, err := r.AuthService.Admin(c.Request().Context(), username)
	if err != nil {
		log.Error("failed to load created admin", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("admin registered", slog.String("username", username))

	return c.JSON(http.StatusCreated, response.AdminCreated{
		Success: true,
		Message: fmt.Sprintf("Administrateur '%s' créé avec succès", username),
		Admin:   admin,
	})
}

// Login godoc
// @Summary Se connecter et obtenir un token
// @Description Authentifie l'administrateur et retourne les tokens d'accès et de rafraîchissement
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Identifiants"
// @Success 200 {object} response.LoginResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	if c.Request().ContentLength == 0 {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidJSON)
	}

	var req request.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidJSON)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, response.ErrCredentialsRequired)
	}

	pair, err := r.AuthService.Login(c.Request().Context(), username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Warn("login rejected", slog.String("username", username))
			return c.JSON(http.StatusUnauthorized, response.ErrBadCredentials)
		}

		log.Error("login failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	admin, err := r.AuthService.Admin(c.Request().Context(), username)
	if err != nil {
		log.Error("failed to load admin", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("admin logged in", slog.String("username", username))

	return c.JSON(http.StatusOK, response.LoginResult{
		Success:      true,
		Message:      "Connexion réussie",
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Admin:        admin,
	})
}

func (r *Routers) RefreshToken(c echo.Context) error {
	const op = "http.routers.RefreshToken"

	log := r.log.With(
		slog.String("op", op),
	)

	raw, err := middleware.ExtractToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, response.ErrTokenFormat)
	}

	if raw == "" {
		var req request.RefreshRequest
		if err := c.Bind(&req); err == nil {
			raw = strings.TrimSpace(req.RefreshToken)
		}
	}
	if raw == "" {
		return c.JSON(http.StatusUnauthorized, response.ErrTokenMissing)
	}

	access, err := r.AuthService.Refresh(c.Request().Context(), raw)
	if err != nil {
		log.Warn("refresh rejected", sl.Err(err))
		return c.JSON(http.StatusUnauthorized, response.ErrTokenInvalid)
	}

	return c.JSON(http.StatusOK, response.TokenRefreshed{
		Success: true,
		Message: "Token renouvelé avec succès",
		Token:   access,
	})
}

func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(
		slog.String("op", op),
	)

	raw, err := middleware.ExtractToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, response.ErrTokenFormat)
	}

	var req request.LogoutRequest
	_ = c.Bind(&req)

	if raw == "" {
		raw = strings.TrimSpace(req.Token)
	}
	if raw == "" {
		return c.JSON(http.StatusUnauthorized, response.ErrTokenMissing)
	}

	if err := r.AuthService.Logout(c.Request().Context(), raw, strings.TrimSpace(req.RefreshToken)); err != nil {
		if errors.Is(err, tokens.ErrTokenMalformed) {
			log.Warn("logout with malformed token")
			return c.JSON(http.StatusUnauthorized, response.ErrTokenInvalid)
		}

		log.Error("logout failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Confirm("Déconnexion réussie"))
}

// AddParticipant godoc
// @Summary Ajouter un participant
// @Description Ajoute un participant au pool. Le champ 'participant' est accepté comme alias de 'numero'.
// @Tags participants
// @Accept json
// @Produce json
// @Param request body request.AddParticipantRequest true "Identifiant du participant"
// @Success 201 {object} response.ParticipantAdded
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /participants [post]
func (r *Routers) AddParticipant(c echo.Context) error {
	const op = "http.routers.AddParticipant"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.AddParticipantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidJSON)
	}

	raw := req.Numero
	if blankJSON(raw) {
		raw = req.Participant
	}
	if blankJSON(raw) {
		return c.JSON(http.StatusBadRequest, response.Error("Le champ 'numero' est requis"))
	}

	name := ingest.Scalar(raw)
	if name == "" {
		return c.JSON(http.StatusBadRequest, response.Error("Le numéro ne peut pas être vide"))
	}

	if err := r.PoolService.AddParticipant(c.Request().Context(), name); err != nil {
		if errors.Is(err, pool.ErrParticipantExists) {
			return c.JSON(http.StatusBadRequest, response.Error(fmt.Sprintf("L'homme %s existe déjà", name)))
		}

		log.Error("failed to add participant", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.ParticipantAdded{
		Success: true,
		Message: fmt.Sprintf("Homme %s ajouté avec succès", name),
		Numero:  name,
	})
}

// AddParticipantsBulk godoc
// @Summary Ajouter plusieurs participants
// @Description Accepte soit un corps JSON avec une liste, soit un fichier CSV/XLSX en form-data sous le champ 'file'
// @Tags participants
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body request.AddParticipantsBulkRequest false "Liste des identifiants (mode JSON)"
// @Param file formData file false "Fichier CSV ou Excel (mode fichier)"
// @Success 201 {object} response.ParticipantBulk
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /participants/bulk [post]
func (r *Routers) AddParticipantsBulk(c echo.Context) error {
	const op = "http.routers.AddParticipantsBulk"

	log := r.log.With(
		slog.String("op", op),
	)

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var body map[string]json.RawMessage
		if err := c.Bind(&body); err != nil || len(body) == 0 {
			return c.JSON(http.StatusBadRequest, response.ErrInvalidJSON)
		}

		values, err := ingest.FromJSON(body, ingest.DefaultParticipantAliases)
		if err != nil {
			switch {
			case errors.Is(err, ingest.ErrNoAliasField):
				return c.JSON(http.StatusBadRequest, response.Error(`Le champ 'numeros' doit être une liste. Ex: {"numeros": ["H1", "H2", "H3"]}`))
			case errors.Is(err, ingest.ErrNoValues):
				return c.JSON(http.StatusBadRequest, response.Error("Aucun numéro valide dans la liste"))
			}
			return c.JSON(http.StatusBadRequest, response.ErrInvalidJSON)
		}

		result, err := r.PoolService.AddParticipants(c.Request().Context(), values)
		if err != nil {
			log.Error("failed to add participants", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}

		return c.JSON(http.StatusCreated, response.ParticipantBulk{
			Success:        true,
			Message:        fmt.Sprintf("%d homme(s) ajouté(s), %d ignoré(s)", len(result.Added), len(result.Ignored)),
			Added:          result.Added,
			Ignored:        result.Ignored,
			TotalProcessed: len(values),
		})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Aucun fichier fourni. Utilisez le champ 'file' en form-data ou envoyez un JSON avec 'participants': [...]"))
	}
	if fh.Filename == "" {
		return c.JSON(http.StatusBadRequest, response.Error("Nom de fichier vide"))
	}

	f, err := fh.Open()
	if err != nil {
		log.Error("failed to open upload", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("Erreur lors de la lecture du fichier", err.Error()))
	}
	defer f.Close()

	result, err := r.PoolService.IngestParticipantFile(c.Request().Context(), fh.Filename, f)
	if err != nil {
		var colErr *ingest.ColumnError
		switch {
		case errors.Is(err, ingest.ErrUnsupportedExt):
			return c.JSON(http.StatusBadRequest, response.Error("Format de fichier non supporté. Utilisez: .csv, .xlsx, .xls"))
		case errors.As(err, &colErr):
			resp := response.Error("Aucune colonne 'numero' ou 'homme' trouvée dans le fichier")
			resp.ColumnsFound = colErr.Found
			return c.JSON(http.StatusBadRequest, resp)
		case errors.Is(err, ingest.ErrNoValues):
			return c.JSON(http.StatusBadRequest, response.Error("Aucun numéro valide trouvé dans le fichier"))
		}

		log.Error("failed to ingest file", slog.String("filename", fh.Filename), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("Erreur lors de la lecture du fichier", err.Error()))
	}

	log.Info("file ingested",
		slog.String("filename", fh.Filename),
		slog.Int("added", len(result.Added)),
		slog.Int("ignored", len(result.Ignored)),
	)

	return c.JSON(http.StatusCreated, response.ParticipantBulk{
		Success:        true,
		Message:        fmt.Sprintf("%d homme(s) ajouté(s), %d ignoré(s)", len(result.Added), len(result.Ignored)),
		Added:          result.Added,
		Ignored:        result.Ignored,
		TotalProcessed: len(result.Added) + len(result.Ignored),
	})
}

// ListParticipants godoc
// @Summary Lister les participants
// @Tags participants
// @Produce json
// @Success 200 {object} response.ParticipantList
// @Failure 500 {object} response.ErrorResponse
// @Router /participants [get]
func (r *Routers) ListParticipants(c echo.Context) error {
	const op = "http.routers.ListParticipants"

	participants, err := r.PoolService.ListParticipants(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list participants", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.ParticipantList{
		Success:      true,
		Total:        len(participants),
		Participants: participants,
	})
}

// DeleteParticipant godoc
// @Summary Supprimer un participant
// @Tags participants
// @Produce json
// @Param numero path string true "Identifiant du participant"
// @Success 200 {object} response.Confirmation
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /participants/{numero} [delete]
func (r *Routers) DeleteParticipant(c echo.Context) error {
	const op = "http.routers.DeleteParticipant"

	log := r.log.With(
		slog.String("op", op),
	)

	name := c.Param("numero")

	if err := r.PoolService.RemoveParticipant(c.Request().Context(), name); err != nil {
		if errors.Is(err, pool.ErrParticipantNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(fmt.Sprintf("L'homme %s n'existe pas", name)))
		}

		log.Error("failed to remove participant", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Confirm(fmt.Sprintf("Homme %s supprimé avec succès", name)))
}

// AddGift godoc
// @Summary Ajouter un cadeau
// @Tags cadeaux
// @Accept json
// @Produce json
// @Param request body request.AddGiftRequest true "Numéro du cadeau"
// @Success 201 {object} response.GiftAdded
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /gifts [post]
func (r *Routers) AddGift(c echo.Context) error {
	const op = "http.routers.AddGift"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.AddGiftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidJSON)
	}

	if len(req.Gift) == 0 || bytes.Equal(bytes.TrimSpace(req.Gift), []byte("null")) {
		return c.JSON(http.StatusBadRequest, response.Error("Le champ 'gift' est requis"))
	}

	var value float64
	if err := json.Unmarshal(req.Gift, &value); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Le cadeau doit être un nombre"))
	}
	number := int64(value)

	if err := r.PoolService.AddGift(c.Request().Context(), number); err != nil {
		if errors.Is(err, pool.ErrGiftExists) {
			return c.JSON(http.StatusBadRequest, response.Error(fmt.Sprintf("Le cadeau %d existe déjà", number)))
		}

		log.Error("failed to add gift", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.GiftAdded{
		Success: true,
		Message: fmt.Sprintf("Cadeau %d ajouté avec succès", number),
		Gift:    number,
	})
}

// AddGiftsBulk godoc
// @Summary Ajouter plusieurs cadeaux
// @Tags cadeaux
// @Accept json
// @Produce json
// @Param request body request.AddGiftsBulkRequest true "Liste des numéros de cadeaux"
// @Success 201 {object} response.GiftBulk
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /gifts/bulk [post]
func (r *Routers) AddGiftsBulk(c echo.Context) error {
	const op = "http.routers.AddGiftsBulk"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.AddGiftsBulkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidJSON)
	}

	if len(req.Gifts) == 0 {
		return c.JSON(http.StatusBadRequest, response.Error("Le champ 'gifts' est requis"))
	}

	elements, ok := rawList(req.Gifts)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.Error("'gifts' doit être une liste"))
	}
	if len(elements) == 0 {
		return c.JSON(http.StatusBadRequest, response.Error("La liste de cadeaux ne peut pas être vide"))
	}

	numbers := make([]int64, 0, len(elements))
	for _, el := range elements {
		var value float64
		if err := json.Unmarshal(el, &value); err != nil {
			return c.JSON(http.StatusBadRequest, response.Error(fmt.Sprintf("Tous les cadeaux doivent être des nombres. Trouvé: %s", jsonTypeName(el))))
		}
		numbers = append(numbers, int64(value))
	}

	result, err := r.PoolService.AddGifts(c.Request().Context(), numbers)
	if err != nil {
		log.Error("failed to add gifts", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.GiftBulk{
		Success: true,
		Message: fmt.Sprintf("%d cadeau(x) ajouté(s), %d ignoré(s)", len(result.Added), len(result.Ignored)),
		Added:   result.Added,
		Ignored: result.Ignored,
	})
}

// ListGifts godoc
// @Summary Lister les cadeaux
// @Description Retourne chaque cadeau avec son état d'association
// @Tags cadeaux
// @Produce json
// @Success 200 {object} response.GiftList
// @Failure 500 {object} response.ErrorResponse
// @Router /gifts [get]
func (r *Routers) ListGifts(c echo.Context) error {
	const op = "http.routers.ListGifts"

	gifts, err := r.PoolService.ListGifts(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list gifts", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.GiftList{
		Success: true,
		Total:   len(gifts),
		Gifts:   gifts,
	})
}

// DeleteGift godoc
// @Summary Supprimer un cadeau
// @Description Supprime le cadeau et son association éventuelle
// @Tags cadeaux
// @Produce json
// @Param gift path int true "Numéro du cadeau"
// @Success 200 {object} response.Confirmation
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /gifts/{gift} [delete]
func (r *Routers) DeleteGift(c echo.Context) error {
	const op = "http.routers.DeleteGift"

	log := r.log.With(
		slog.String("op", op),
	)

	number, err := strconv.ParseInt(c.Param("gift"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrEndpointNotFound)
	}

	if err := r.PoolService.RemoveGift(c.Request().Context(), number); err != nil {
		if errors.Is(err, pool.ErrGiftNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(fmt.Sprintf("Le cadeau %d n'existe pas", number)))
		}

		log.Error("failed to remove gift", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Confirm(fmt.Sprintf("Cadeau %d supprimé avec succès (ainsi que son association éventuelle)", number)))
}

// Associate godoc
// @Summary Associer participants et cadeaux
// @Description Tire au sort un cadeau libre pour chaque participant libre et persiste le résultat
// @Tags associations
// @Produce json
// @Success 200 {object} response.AssociateResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /associate [post]
func (r *Routers) Associate(c echo.Context) error {
	const op = "http.routers.Associate"

	log := r.log.With(
		slog.String("op", op),
	)

	result, err := r.AssociationService.Associate(c.Request().Context())
	if err != nil {
		switch {
		case errors.Is(err, association.ErrNothingToPair):
			return c.JSON(http.StatusOK, response.AssociateResult{
				Success:      true,
				Message:      "Aucun participant à associer. Ajoutez des participants d'abord.",
				Timestamp:    time.Now().Format(timestampLayout),
				Associations: []pairing.Assignment{},
			})
		case errors.Is(err, pairing.ErrInsufficientPool):
			return c.JSON(http.StatusBadRequest, response.Error("Pas assez de cadeaux pour associer tous les participants"))
		}

		log.Error("failed to associate", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("associations created", slog.Int("count", len(result.Associations)))

	return c.JSON(http.StatusOK, response.AssociateResult{
		Success:      true,
		Message:      fmt.Sprintf("%d association(s) créée(s)", len(result.Associations)),
		Timestamp:    result.Timestamp.Format(timestampLayout),
		Associations: result.Associations,
		Stats:        result.Stats,
	})
}

// DrawCouples godoc
// @Summary Tirage de couples hommes-femmes
// @Description Forme des couples à partir des deux listes envoyées, mixtes d'abord puis au sein de chaque liste. Rien n'est persisté.
// @Tags associations
// @Accept json
// @Produce json
// @Param request body request.DrawRequest true "Les deux listes de numéros"
// @Success 200 {object} response.DrawResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/associate [post]
func (r *Routers) DrawCouples(c echo.Context) error {
	const op = "http.routers.DrawCouples"

	log := r.log.With(
		slog.String("op", op),
	)

	var body map[string]json.RawMessage
	if err := c.Bind(&body); err != nil || len(body) == 0 {
		return c.JSON(http.StatusBadRequest, response.Error("Données JSON manquantes"))
	}

	input, msg := parseDrawPools(body)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, response.Error(msg))
	}

	out, err := r.DrawService.Draw(input)
	if err != nil {
		var poolErr *draw.PoolError
		var overlapErr *draw.OverlapError
		switch {
		case errors.Is(err, draw.ErrEmptyPools):
			return c.JSON(http.StatusBadRequest, response.Error("Au moins une des listes doit contenir des participants"))
		case errors.As(err, &poolErr):
			return c.JSON(http.StatusBadRequest, response.Error(fmt.Sprintf("La liste '%s' contient des doublons", poolErr.Pool)))
		case errors.As(err, &overlapErr):
			nums := append([]int64(nil), overlapErr.Numbers...)
			sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
			return c.JSON(http.StatusBadRequest, response.Error("Les numéros suivants apparaissent dans les deux listes: "+formatNumberList(nums)))
		}

		log.Error("draw failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("draw completed",
		slog.Int("couples", len(out.Couples)),
		slog.Int("participants", out.Stats.TotalPersonnes),
	)

	return c.JSON(http.StatusOK, response.DrawResult{
		Success:   true,
		Timestamp: out.Timestamp.Format(timestampLayout),
		Couples:   out.Couples,
		Stats: response.DrawStats{
			TotalPersonnes: out.Stats.TotalPersonnes,
			TotalCouples:   out.Stats.TotalCouples,
			CouplesHF:      out.Stats.CouplesHF,
			CouplesFF:      out.Stats.CouplesFF,
			CouplesHH:      out.Stats.CouplesHH,
			NonAssociees:   out.Stats.NonAssociees,
		},
	})
}

// ListAssociations godoc
// @Summary Lister les associations
// @Tags associations
// @Produce json
// @Success 200 {object} response.AssociationList
// @Failure 500 {object} response.ErrorResponse
// @Router /associations [get]
func (r *Routers) ListAssociations(c echo.Context) error {
	const op = "http.routers.ListAssociations"

	details, err := r.AssociationService.List(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list associations", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	byParticipant := make(map[string]int64, len(details))
	list := make([]response.AssociationEntry, 0, len(details))
	for _, d := range details {
		byParticipant[d.Participant] = d.Gift
		list = append(list, response.AssociationEntry{Participant: d.Participant, Gift: d.Gift})
	}

	return c.JSON(http.StatusOK, response.AssociationList{
		Success:          true,
		Total:            len(details),
		Associations:     byParticipant,
		AssociationsList: list,
	})
}

// DeleteAssociation godoc
// @Summary Supprimer une association
// @Description Libère le cadeau associé au participant
// @Tags associations
// @Produce json
// @Param participant path string true "Identifiant du participant"
// @Success 200 {object} response.Confirmation
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /associations/{participant} [delete]
func (r *Routers) DeleteAssociation(c echo.Context) error {
	const op = "http.routers.DeleteAssociation"

	log := r.log.With(
		slog.String("op", op),
	)

	name := c.Param("participant")

	if err := r.AssociationService.Dissociate(c.Request().Context(), name); err != nil {
		switch {
		case errors.Is(err, association.ErrParticipantNotFound):
			return c.JSON(http.StatusNotFound, response.Error(fmt.Sprintf("Le participant '%s' n'existe pas dans le système", name)))
		case errors.Is(err, association.ErrNoAssociation):
			return c.JSON(http.StatusNotFound, response.Error(fmt.Sprintf("Le participant '%s' n'a pas d'association", name)))
		}

		log.Error("failed to dissociate", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Confirm(fmt.Sprintf("Association du participant '%s' supprimée avec succès. Le cadeau est maintenant disponible.", name)))
}

// Reset godoc
// @Summary Réinitialiser toutes les données
// @Description Vide les pools et les associations, et retourne les comptes supprimés
// @Tags systeme
// @Produce json
// @Success 200 {object} response.ResetDone
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /reset [delete]
func (r *Routers) Reset(c echo.Context) error {
	const op = "http.routers.Reset"

	log := r.log.With(
		slog.String("op", op),
	)

	report, err := r.AssociationService.Reset(c.Request().Context())
	if err != nil {
		log.Error("failed to reset", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("data reset",
		slog.Int("participants", report.Participants),
		slog.Int("gifts", report.Gifts),
		slog.Int("associations", report.Associations),
	)

	return c.JSON(http.StatusOK, response.ResetDone{
		Success:      true,
		Message:      "Toutes les données ont été réinitialisées",
		PreviousData: report,
		Timestamp:    time.Now().Format(timestampLayout),
	})
}

// ExportCSV godoc
// @Summary Exporter les associations en CSV
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "Fichier CSV en pièce jointe"
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /export/csv [get]
func (r *Routers) ExportCSV(c echo.Context) error {
	const op = "http.routers.ExportCSV"

	content, filename, err := r.ExportService.CSV(c.Request().Context())
	if err != nil {
		r.log.Error("failed to export csv", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", content)
}

// ExportPDF godoc
// @Summary Exporter les associations en PDF
// @Tags export
// @Produce application/pdf
// @Success 200 {string} string "Fichier PDF en pièce jointe"
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /export/pdf [get]
func (r *Routers) ExportPDF(c echo.Context) error {
	const op = "http.routers.ExportPDF"

	content, filename, err := r.ExportService.PDF(c.Request().Context())
	if err != nil {
		r.log.Error("failed to export pdf", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", content)
}

// parseDrawPools validates the two pool fields one by one so the response
// can name the exact field and index that broke.
func parseDrawPools(body map[string]json.RawMessage) (draw.DrawInput, string) {
	var input draw.DrawInput

	rawFemmes, ok := body["femmes"]
	if !ok {
		return input, "La liste 'femmes' est requise"
	}
	rawHommes, ok := body["hommes"]
	if !ok {
		return input, "La liste 'hommes' est requise"
	}

	femmes, ok := rawList(rawFemmes)
	if !ok {
		return input, "Le champ 'femmes' doit être une liste"
	}
	hommes, ok := rawList(rawHommes)
	if !ok {
		return input, "Le champ 'hommes' doit être une liste"
	}

	input.Femmes = make([]int64, 0, len(femmes))
	for i, el := range femmes {
		var value float64
		if err := json.Unmarshal(el, &value); err != nil {
			return input, fmt.Sprintf("L'élément à l'index %d de 'femmes' doit être un nombre", i)
		}
		input.Femmes = append(input.Femmes, int64(value))
	}

	input.Hommes = make([]int64, 0, len(hommes))
	for i, el := range hommes {
		var value float64
		if err := json.Unmarshal(el, &value); err != nil {
			return input, fmt.Sprintf("L'élément à l'index %d de 'hommes' doit être un nombre", i)
		}
		input.Hommes = append(input.Hommes, int64(value))
	}

	return input, ""
}

// rawList unmarshals a JSON array. A null value is not a list.
func rawList(raw json.RawMessage) ([]json.RawMessage, bool) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

// blankJSON reports values that fall through to the next request field:
// absent, null, empty string, zero and false.
func blankJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return true
	case bytes.Equal(trimmed, []byte("null")),
		bytes.Equal(trimmed, []byte(`""`)),
		bytes.Equal(trimmed, []byte("0")),
		bytes.Equal(trimmed, []byte("false")):
		return true
	}
	return false
}

func jsonTypeName(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "null"
	}

	switch trimmed[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "list"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// formatNumberList renders numbers as "[1, 2, 3]", the shape the overlap
// message has always used.
func formatNumberList(nums []int64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
