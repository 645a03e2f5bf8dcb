package http

import (
	"net/http"

	"github.com/lodgeworks/gatehouse/pkg/httpx"
)

// clientCertHeader is set by a terminating proxy that performed mTLS.
const clientCertHeader = "X-Client-Cert"

// RequireClientCert rejects requests that do not carry a forwarded
// client certificate header. Off by default; enabled only in
// deployments fronted by an mTLS-terminating proxy.
func RequireClientCert() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(clientCertHeader) == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "certificate_required", "Client certificate required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
