package http

import (
	"strings"

	"github.com/heart-smiles/heart-smiles-api/internal/config"
	"github.com/heart-smiles/heart-smiles-api/internal/logger"
)

// OriginRule is one matching predicate of the cross-origin allow-list.
//
// The rule set is closed: an exact-string variant and a
// prefix/suffix-bounded pattern variant, not a general pattern
// engine, so the security-relevant matching logic stays auditable.
type OriginRule interface {
	// Matches reports whether the given Origin header value satisfies the
	// rule. Matching is case-sensitive; no substring matching is performed
	// beyond what the rule variant explicitly defines.
	Matches(origin string) bool
}

// exactOrigin matches one literal origin string by equality.
type exactOrigin string

func (e exactOrigin) Matches(origin string) bool {
	return string(e) == origin
}

// boundedPattern matches origins that start with Prefix and end with Suffix,
// with at least one character between the two. It covers the frontend's
// preview-deployment subdomain family without admitting arbitrary hosts that
// merely share the platform suffix.
type boundedPattern struct {
	Prefix string
	Suffix string
}

func (p boundedPattern) Matches(origin string) bool {
	if len(origin) <= len(p.Prefix)+len(p.Suffix) {
		return false
	}
	return strings.HasPrefix(origin, p.Prefix) && strings.HasSuffix(origin, p.Suffix)
}

// AllowedOrigins is the closed set of origins permitted to receive
// cross-origin response headers. Built once at startup; read-only afterwards.
type AllowedOrigins []OriginRule

// staticOrigins are the origins allowed regardless of configuration:
// local development frontends and the production domain.
var staticOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"https://heartsmiles.org",
	"https://www.heartsmiles.org",
}

// previewPattern admits the frontend's preview deployments, e.g.
// https://heart-smiles-frontend-preview123.vercel.app. The prefix and suffix
// are both required, so https://evil.vercel.app and lookalike hosts such as
// https://heart-smiles-frontendevil.vercel.app are rejected. The trailing
// dash in the prefix is the subdomain-family boundary.
var previewPattern = boundedPattern{
	Prefix: "https://heart-smiles-frontend-",
	Suffix: ".vercel.app",
}

// BuildAllowedOrigins assembles the allow-list from static literals, the
// preview-deployment pattern, and the environment-derived origins in cfg.
// Absent configuration values are filtered out here, never compared as empty
// strings.
func BuildAllowedOrigins(cfg config.CORS, log *logger.Logger) AllowedOrigins {
	rules := make(AllowedOrigins, 0, len(staticOrigins)+4)

	for _, o := range staticOrigins {
		rules = append(rules, exactOrigin(o))
	}
	rules = append(rules, previewPattern)

	if cfg.FrontendURL != "" {
		rules = append(rules, exactOrigin(cfg.FrontendURL))
	}
	// platform-assigned hostnames come without a scheme
	if cfg.VercelURL != "" {
		rules = append(rules, exactOrigin("https://"+cfg.VercelURL))
	}
	if cfg.NextPublicVercelURL != "" {
		rules = append(rules, exactOrigin("https://"+cfg.NextPublicVercelURL))
	}

	log.Info().Int("rules", len(rules)).Msg("cross-origin allow-list built")

	return rules
}

// Match evaluates origin against the allow-list. An absent origin (empty
// string; non-browser clients don't send an Origin header) is always
// allowed.
func (a AllowedOrigins) Match(origin string) bool {
	if origin == "" {
		return true
	}

	for _, rule := range a {
		if rule.Matches(origin) {
			return true
		}
	}

	return false
}
