package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/premium-backend/internal/models"
	jwtPkg "github.com/sefazor/premium-backend/pkg/jwt"
	"go.uber.org/zap"
)

const (
	SessionCookieName = "session"
	sessionLocalsKey  = "session"
)

// SessionMiddleware loads the signed session cookie into c.Locals and re-issues it
// when a handler modified the session.
func SessionMiddleware(signer *jwtPkg.Signer, secure bool, log *zap.Logger) fiber.Handler {
	log = log.Named("session")

	return func(c *fiber.Ctx) error {
		sess := &models.Session{}
		if token := c.Cookies(SessionCookieName); token != "" {
			claims, err := signer.ValidateToken(token)
			if err != nil {
				log.Debug("discarding invalid session cookie", zap.String("ip", c.IP()), zap.Error(err))
			} else {
				sess.IsPremium = claims.IsPremium
				sess.CheckoutSessionID = claims.CheckoutSessionID
			}
		}
		c.Locals(sessionLocalsKey, sess)

		err := c.Next()

		if sess.Modified() {
			token, signErr := signer.GenerateToken(jwtPkg.SessionClaims{
				IsPremium:         sess.IsPremium,
				CheckoutSessionID: sess.CheckoutSessionID,
			})
			if signErr != nil {
				log.Error("failed to sign session", zap.Error(signErr))
				return signErr
			}

			c.Cookie(&fiber.Cookie{
				Name:     SessionCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(signer.MaxAge().Seconds()),
				Secure:   secure,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		return err
	}
}

// GetSession never returns nil; routes mounted without SessionMiddleware get a throwaway session.
func GetSession(c *fiber.Ctx) *models.Session {
	if sess, ok := c.Locals(sessionLocalsKey).(*models.Session); ok {
		return sess
	}
	return &models.Session{}
}

func RequirePremium() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetSession(c).IsPremium {
			return c.Status(fiber.StatusForbidden).JSON(models.NewErrorResponse("You must purchase to access"))
		}
		return c.Next()
	}
}
