package ratelimit

import (
	"strings"
	"time"
)

// Rule is a named budget. Keys are built as "<prefix>_<part>_<part>".
type Rule struct {
	Prefix string
	Limit  int
	Period time.Duration
}

// Budgets of the rate-limited form posts.
var (
	CourierSignupRule = Rule{Prefix: "cad", Limit: 10, Period: time.Hour}
	CourierLoginRule  = Rule{Prefix: "login", Limit: 10, Period: time.Minute}
	StoreAdminRule    = Rule{Prefix: "admin", Limit: 10, Period: time.Minute}
	PasswordResetRule = Rule{Prefix: "reset", Limit: 5, Period: time.Hour}
)

// Key builds the limiter key of the rule for the given parts, e.g.
// CourierSignupRule.Key("203.0.113.7") == "cad_203.0.113.7".
func (r Rule) Key(parts ...string) string {
	return strings.Join(append([]string{r.Prefix}, parts...), "_")
}
