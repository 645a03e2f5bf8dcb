package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/lodgeworks/gatehouse/internal/intake/service"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
	"github.com/lodgeworks/gatehouse/pkg/httpx"
	"github.com/lodgeworks/gatehouse/pkg/slogx"

	_ "github.com/lodgeworks/gatehouse/api/intake" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	validate     *validator.Validate

	store             store.Store
	ChallengeService  *service.MathChallengeService
	HandshakeService  *service.HandshakeService
	SessionService    *service.SessionService
	FormService       *service.FormService
	RequireClientCert bool
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		store:        st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerCaptcha()
	r.registerVerification()
	r.registerSessions()
	r.registerForm()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Gatehouse Form Intake API
//	@version		0.1.0
//	@description	Verification handshake and session gateway for the accommodation application form.
//	@description
//	@description				Applicants pass a math challenge, redeem an emailed one-time code for an opaque
//	@description				session token, and submit the form under that token. The submitted email must
//	@description				match the verified session identity.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionToken
//	@in							header
//	@name						X-Session-Token
//	@description				Opaque session token minted by the verify-mfa-token endpoint.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// apiGate returns the middleware list prepended to every /api/
// endpoint. Only the optional mTLS-proxy gate lives here; rate limits
// stay per-endpoint.
func (r *Router) apiGate(mws ...httpx.Middleware) []httpx.Middleware {
	if r.RequireClientCert {
		mws = append([]httpx.Middleware{RequireClientCert()}, mws...)
	}
	return mws
}

func (r *Router) registerCaptcha() {
	h := &CaptchaHandler{Challenge: r.ChallengeService}

	// GET /generate-math-captcha - lenient, clients refresh challenges freely
	r.Mux.Handle("GET /api/auth/generate-math-captcha",
		httpx.Chain(http.HandlerFunc(h.HandleGenerate),
			r.apiGate(httpx.RateLimitByIP(httpx.LenientLimit))...,
		),
	)
}

func (r *Router) registerVerification() {
	h := &VerificationHandler{
		Handshake: r.HandshakeService,
		Validate:  r.validate,
	}

	// POST /request-email-verification - strict rate limit (triggers outbound mail)
	r.Mux.Handle("POST /api/auth/request-email-verification",
		httpx.Chain(http.HandlerFunc(h.HandleRequest),
			r.apiGate(httpx.RateLimitByIP(httpx.StrictLimit))...,
		),
	)

	// POST /verify-mfa-token - strict rate limit (code guessing surface;
	// the per-session attempt budget is the second line of defence)
	r.Mux.Handle("POST /api/auth/verify-mfa-token",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			r.apiGate(httpx.RateLimitByIP(httpx.StrictLimit))...,
		),
	)
}

func (r *Router) registerSessions() {
	h := &SessionHandler{Sessions: r.SessionService}

	// GET /session/status - lenient, polled by the form frontend
	r.Mux.Handle("GET /api/auth/session/status",
		httpx.Chain(http.HandlerFunc(h.HandleStatus),
			r.apiGate(httpx.RateLimitByIP(httpx.LenientLimit))...,
		),
	)

	// POST /session/extend - moderate rate limit
	r.Mux.Handle("POST /api/auth/session/extend",
		httpx.Chain(http.HandlerFunc(h.HandleExtend),
			r.apiGate(httpx.RateLimitByIP(httpx.ModerateLimit))...,
		),
	)

	// POST /logout - moderate rate limit
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			r.apiGate(httpx.RateLimitByIP(httpx.ModerateLimit))...,
		),
	)
}

func (r *Router) registerForm() {
	h := &FormHandler{
		Forms:    r.FormService,
		Validate: r.validate,
	}

	// POST /submit - moderate rate limit by IP
	r.Mux.Handle("POST /api/form/submit",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			r.apiGate(httpx.RateLimitByIP(httpx.ModerateLimit))...,
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
