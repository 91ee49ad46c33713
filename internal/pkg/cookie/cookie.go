package cookie

import (
	"net/http"

	"little-lemon/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

const sessionIDKey = "sid"

// SessionCodec signs and encrypts the visitor session id carried in a cookie.
type SessionCodec struct {
	sc  *securecookie.SecureCookie
	cfg config.SessionConfig
}

// NewSessionCodec builds a codec from the configured keys. Missing keys are
// generated, in which case cookies become invalid after a restart.
func NewSessionCodec(cfg config.SessionConfig) (*SessionCodec, bool, error) {
	hashKey, blockKey, err := cfg.Keys()
	if err != nil {
		return nil, false, err
	}
	generated := false
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(64)
		generated = true
	}
	if len(blockKey) == 0 {
		blockKey = securecookie.GenerateRandomKey(32)
		generated = true
	}

	sc := securecookie.New(hashKey, blockKey)
	if cfg.TTL > 0 {
		sc.MaxAge(int(cfg.TTL.Seconds()))
	}
	return &SessionCodec{sc: sc, cfg: cfg}, generated, nil
}

func (s *SessionCodec) Name() string {
	return s.cfg.CookieName
}

func (s *SessionCodec) SetSessionID(c *gin.Context, id uuid.UUID) error {
	encoded, err := s.sc.Encode(s.cfg.CookieName, map[string]string{sessionIDKey: id.String()})
	if err != nil {
		return err
	}

	c.SetSameSite(getSameSite(s.cfg.SameSite))
	c.SetCookie(
		s.cfg.CookieName,
		encoded,
		int(s.cfg.TTL.Seconds()),
		"/",
		s.cfg.Domain,
		s.cfg.Secure,
		true, // HttpOnly
	)
	return nil
}

// GetSessionID returns false for a missing, tampered or expired cookie.
func (s *SessionCodec) GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	raw, err := c.Cookie(s.cfg.CookieName)
	if err != nil || raw == "" {
		return uuid.Nil, false
	}

	value := map[string]string{}
	if err := s.sc.Decode(s.cfg.CookieName, raw, &value); err != nil {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(value[sessionIDKey])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (s *SessionCodec) Clear(c *gin.Context) {
	c.SetSameSite(getSameSite(s.cfg.SameSite))
	c.SetCookie(
		s.cfg.CookieName,
		"",
		-1,
		"/",
		s.cfg.Domain,
		s.cfg.Secure,
		true,
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
