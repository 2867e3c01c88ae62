package pprofserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artmarket-partner-console/internal/config"
)

func serve(h http.Handler, remote string, creds ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "http://example/debug/pprof/", nil)
	req.RemoteAddr = remote
	if len(creds) == 2 {
		req.SetBasicAuth(creds[0], creds[1])
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func teapot() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestNew_DisabledWithoutAddr(t *testing.T) {
	t.Parallel()

	require.Nil(t, New(config.Pprof{}))
	require.Nil(t, New(config.Pprof{Addr: "  "}))

	srv := New(config.Pprof{Addr: "127.0.0.1:6060"})
	require.NotNil(t, srv)
	assert.Equal(t, "127.0.0.1:6060", srv.Addr)
	assert.NotNil(t, srv.Handler)
}

func TestGuard(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		user   string
		pass   string
		remote string
		creds  []string
		want   int
	}{
		{name: "loopback without auth", remote: "127.0.0.1:12345", want: http.StatusTeapot},
		{name: "ipv6 loopback", remote: "[::1]:1", want: http.StatusTeapot},
		{name: "remote without configured creds", remote: "8.8.8.8:1", creds: []string{"u", "p"}, want: http.StatusUnauthorized},
		{name: "remote wrong password", user: "u", pass: "p", remote: "8.8.8.8:1", creds: []string{"u", "WRONG"}, want: http.StatusUnauthorized},
		{name: "remote no auth header", user: "u", pass: "p", remote: "8.8.8.8:1", want: http.StatusUnauthorized},
		{name: "remote correct creds", user: "u", pass: "p", remote: "8.8.8.8:1", creds: []string{"u", "p"}, want: http.StatusTeapot},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := serve(guard(teapot(), tc.user, tc.pass), tc.remote, tc.creds...)
			require.Equal(t, tc.want, rr.Code)
			if tc.want == http.StatusUnauthorized {
				assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestLoopback(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"127.0.0.1:123": true,
		"127.0.0.1":     true,
		" 127.0.0.1 ":   true,
		"[::1]:123":     true,
		"8.8.8.8:1":     false,
		"not-an-ip:1":   false,
	}
	for in, want := range cases {
		assert.Equal(t, want, loopback(in), in)
	}
}

func TestHandler_ServesIndexToLoopback(t *testing.T) {
	t.Parallel()

	rr := serve(Handler(config.Pprof{}), "127.0.0.1:1")
	require.Equal(t, http.StatusOK, rr.Code)
}
