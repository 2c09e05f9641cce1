package auth

import (
	"net/http"
	"net/url"

	"github.com/CrestNiraj12/netfeed/domain"
)

// CSRFCookieName is the cookie the server issues the anti-forgery token in.
const CSRFCookieName = "csrftoken"

// CSRFSource supplies the token echoed in the X-CSRFToken header.
type CSRFSource interface {
	CSRFToken() (string, error)
}

// JarCSRF reads the csrftoken cookie the server set in a cookie jar.
type JarCSRF struct {
	jar  http.CookieJar
	base *url.URL
}

// NewJarCSRF creates a CSRFSource over jar for cookies scoped to base.
func NewJarCSRF(jar http.CookieJar, base *url.URL) *JarCSRF {
	return &JarCSRF{jar: jar, base: base}
}

// CSRFToken returns the current cookie value or domain.ErrNoCSRFToken.
func (j *JarCSRF) CSRFToken() (string, error) {
	for _, c := range j.jar.Cookies(j.base) {
		if c.Name == CSRFCookieName && c.Value != "" {
			return c.Value, nil
		}
	}
	return "", domain.ErrNoCSRFToken
}

// StaticCSRF is a fixed token, handy for scripts and tests.
type StaticCSRF string

func (s StaticCSRF) CSRFToken() (string, error) {
	if s == "" {
		return "", domain.ErrNoCSRFToken
	}
	return string(s), nil
}
