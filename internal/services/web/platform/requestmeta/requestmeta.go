// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// IsHTTPS reports whether a request arrived over TLS.
func IsHTTPS(r *http.Request) bool {
	return requestScheme(r) == "https"
}

// IsCrossOrigin reports whether Origin, or Referer when Origin is absent,
// names a different origin than the request itself. Requests carrying
// neither header are not cross-origin.
func IsCrossOrigin(r *http.Request) bool {
	if r == nil {
		return false
	}
	source := strings.TrimSpace(r.Header.Get("Origin"))
	if source == "" {
		source = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if source == "" {
		return false
	}
	scheme, host, port := requestOriginParts(r)
	return !sameOrigin(source, scheme, host, port)
}

func sameOrigin(raw string, requestScheme string, requestHost string, requestPort string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	originScheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	if originScheme == "" || originScheme != requestScheme {
		return false
	}
	originHost := strings.ToLower(strings.TrimSpace(parsed.Hostname()))
	if originHost == "" || originHost != requestHost {
		return false
	}
	originPort := strings.TrimSpace(parsed.Port())
	if originPort == "" {
		originPort = defaultPortForScheme(originScheme)
	}
	return originPort == requestPort
}

func requestOriginParts(r *http.Request) (string, string, string) {
	scheme := requestScheme(r)
	host, port := requestHostParts(r.Host)
	if host == "" && r.URL != nil {
		host, port = requestHostParts(r.URL.Host)
	}
	if port == "" {
		port = defaultPortForScheme(scheme)
	}
	return scheme, host, port
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return ""
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPortForScheme(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func requestHostParts(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
