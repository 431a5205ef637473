package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	jwtlib "tirage/internal/lib/jwt"
	"tirage/internal/lib/logger/sl"
	"tirage/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// Context keys Auth fills in for downstream handlers.
const (
	ClaimsContextKey = "current_user"
	TokenContextKey  = "current_token"
)

// ErrMalformedHeader reports an Authorization header that is present but
// not in Bearer form.
var ErrMalformedHeader = errors.New("malformed authorization header")

type TokenVerifier interface {
	Verify(ctx context.Context, raw string, kind jwtlib.TokenKind) (*jwtlib.Claims, error)
}

// Auth gates a route on a verified token of the given kind. The token is
// read from the Authorization header first, then from the "token" field of
// a JSON body. Verified claims and the raw token land in the echo context.
func Auth(log *slog.Logger, tokens TokenVerifier, kind jwtlib.TokenKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			const op = "middleware.Auth"

			raw, err := ExtractToken(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, response.ErrTokenFormat)
			}
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, response.ErrTokenMissing)
			}

			claims, err := tokens.Verify(c.Request().Context(), raw, kind)
			if err != nil {
				log.Warn("token rejected",
					slog.String("op", op),
					slog.String("path", c.Path()),
					sl.Err(err),
				)

				return c.JSON(http.StatusUnauthorized, response.ErrTokenInvalid)
			}

			c.Set(ClaimsContextKey, claims)
			c.Set(TokenContextKey, raw)

			return next(c)
		}
	}
}

// ExtractToken pulls the serialized token out of the request. The
// Authorization header wins over the body; a malformed header is an error
// rather than a fallthrough. Empty result with a nil error means no token
// was presented at all.
func ExtractToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", ErrMalformedHeader
		}
		if raw := strings.TrimSpace(parts[1]); raw != "" {
			return raw, nil
		}
	}

	return tokenFromBody(c), nil
}

// tokenFromBody reads the "token" field of a JSON body. The body is put
// back on the request so handlers can still bind it.
func tokenFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil || req.Body == http.NoBody {
		return ""
	}

	body, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return strings.TrimSpace(payload.Token)
}

// CurrentClaims returns the claims Auth verified, or nil outside a
// protected route.
func CurrentClaims(c echo.Context) *jwtlib.Claims {
	claims, _ := c.Get(ClaimsContextKey).(*jwtlib.Claims)
	return claims
}

// CurrentToken returns the raw token Auth accepted, or "".
func CurrentToken(c echo.Context) string {
	raw, _ := c.Get(TokenContextKey).(string)
	return raw
}
