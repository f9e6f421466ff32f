package utils

import (
	"clinic-portal/internal/pkg/constvars"
	"net/url"
	"strings"
)

// BuildLoginRedirectURL points at the login page and carries target as the
// return URL.
func BuildLoginRedirectURL(target string) string {
	query := url.Values{}
	query.Set(constvars.QueryParamReturnURL, target)
	return constvars.RouteLogin + "?" + query.Encode()
}

// SanitizeReturnURL keeps only same-origin absolute paths and falls back to
// the dashboard for everything else.
func SanitizeReturnURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return constvars.RouteDashboard
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return constvars.RouteDashboard
	}

	if parsed.Path == constvars.RouteLogin {
		return constvars.RouteDashboard
	}
	return parsed.RequestURI()
}
