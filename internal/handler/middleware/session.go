package middleware

import (
	"log/slog"

	"little-lemon/internal/handler/httperr"
	"little-lemon/internal/pkg/cookie"
	"little-lemon/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxSessionKey   = "session"
	ctxSessionIDKey = "session_id"
)

type SessionMiddleware struct {
	codec  *cookie.SessionCodec
	store  *usecase.SessionStore
	logger *slog.Logger
}

func NewSessionMiddleware(codec *cookie.SessionCodec, store *usecase.SessionStore, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{codec: codec, store: store, logger: logger}
}

// Attach resolves the visitor's session from the cookie, starting a new one
// for first visits and expired cookies.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, known := m.codec.GetSessionID(c)

		sess, created, err := m.store.GetOrCreate(c.Request.Context(), id, known)
		if err != nil {
			httperr.Abort(c, err, nil)
			return
		}

		if created {
			if err := m.codec.SetSessionID(c, sess.ID); err != nil {
				m.logger.Error("failed to encode session cookie", slog.String("error", err.Error()))
				httperr.Abort(c, err, nil)
				return
			}
		}

		SetSession(c, sess)
		c.Next()
	}
}

func SetSession(c *gin.Context, sess *usecase.Session) {
	c.Set(ctxSessionKey, sess)
	c.Set(ctxSessionIDKey, sess.ID.String())
}

func GetSession(c *gin.Context) (*usecase.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*usecase.Session)
	return sess, ok
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}
