package server

import (
	"bufio"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	stderrors "errors"
	"io"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/user/pwa-builder/internal/config"
	"github.com/user/pwa-builder/internal/errors"
	"github.com/user/pwa-builder/internal/logging"
)

// writeCertificate writes a self-signed localhost certificate and key as PEM files
func writeCertificate(t *testing.T, dir string) (certPath, keyPath string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		DNSNames:     []string{"localhost"},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IsCA:         true,

		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	certPath = filepath.Join(dir, "cert.pem")
	keyPath = filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0600))
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0600))
	return certPath, keyPath
}

func testConfig(t *testing.T) *config.ServeConfig {
	t.Helper()
	dir := t.TempDir()
	cert, key := writeCertificate(t, dir)

	root := filepath.Join(dir, "dist")
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>hello pwa</h1>"), 0644))

	return &config.ServeConfig{
		CA:       cert,
		Cert:     cert,
		Key:      key,
		Hostname: "localhost",
		Root:     root,
	}
}

func TestRedirectHandler(t *testing.T) {
	h := RedirectHandler("pwa.test", 8443)

	for _, target := range []string{
		"/docs/page?x=1",
		"http://pwa.test/docs/page?x=1",
		"http://other.host:8080/docs/page?x=1",
	} {
		t.Run(target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusMovedPermanently, rec.Code)
			assert.Equal(t, "https://pwa.test:8443/docs/page?x=1", rec.Header().Get("Location"))
		})
	}
}

func TestRedirectHandler_AbsoluteFormOverTheWire(t *testing.T) {
	ts := httptest.NewServer(RedirectHandler("localhost", 443))
	defer ts.Close()

	conn, err := net.Dial("tcp", ts.Listener.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = io.WriteString(conn, "GET http://localhost/app/index.html?v=2 HTTP/1.1\r\nHost: localhost\r\nConnection: close\r\n\r\n")
	require.NoError(t, err)

	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "https://localhost:443/app/index.html?v=2", resp.Header.Get("Location"))
}

func TestStaticHandler_ServesRoot(t *testing.T) {
	cfg := testConfig(t)
	h := StaticHandler(cfg.Root)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello pwa")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInstrument_RecordsMetricsAndLogs(t *testing.T) {
	logger, logs := logging.NewObservedLogger(zapcore.DebugLevel)
	metrics := NewMetrics()
	h := instrument("redirect", logger, metrics, RedirectHandler("localhost", 443))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/a", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/b", nil))

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `pwa_builder_http_requests_total{code="301",method="GET",server="redirect"} 2`)
	assert.Contains(t, body, `pwa_builder_http_request_duration_seconds_count{server="redirect"} 2`)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(301), entries[0].ContextMap()["status"])
	assert.Equal(t, "/a", entries[0].ContextMap()["uri"])
}

func TestLoadTLSConfig_AppendsCAChain(t *testing.T) {
	cfg := testConfig(t)

	tlsConfig, err := LoadTLSConfig(cfg)
	require.NoError(t, err)
	require.Len(t, tlsConfig.Certificates, 1)
	assert.Len(t, tlsConfig.Certificates[0].Certificate, 2)

	cfg.CA = ""
	tlsConfig, err = LoadTLSConfig(cfg)
	require.NoError(t, err)
	assert.Len(t, tlsConfig.Certificates[0].Certificate, 1)
}

func TestLoadTLSConfig_Errors(t *testing.T) {
	cfg := testConfig(t)

	missing := *cfg
	missing.Cert = filepath.Join(t.TempDir(), "nope.pem")
	_, err := LoadTLSConfig(&missing)
	var missingErr *errors.MissingFileError
	assert.True(t, stderrors.As(err, &missingErr), "got %v", err)

	mismatched := *cfg
	mismatched.Key = mismatched.Cert
	_, err = LoadTLSConfig(&mismatched)
	var tlsErr *errors.TLSError
	assert.True(t, stderrors.As(err, &tlsErr), "got %v", err)

	badCA := *cfg
	badCA.CA = filepath.Join(cfg.Root, "index.html")
	_, err = LoadTLSConfig(&badCA)
	assert.True(t, stderrors.As(err, &tlsErr), "got %v", err)
}

func TestNew_RejectsMissingRoot(t *testing.T) {
	cfg := testConfig(t)
	cfg.Root = filepath.Join(cfg.Root, "nope")

	_, err := New(cfg, logging.NewNopLogger())
	var pathErr *errors.InvalidPathError
	assert.True(t, stderrors.As(err, &pathErr), "got %v", err)
}

func TestServer_RunServesAndShutsDown(t *testing.T) {
	cfg := testConfig(t)
	cfg.MetricsAddr = "127.0.0.1:0"
	logger, logs := logging.NewObservedLogger(zapcore.DebugLevel)

	srv, err := New(cfg, logger)
	require.NoError(t, err)

	// Kernel-picked ports; the redirect target still names the configured port.
	srv.https.Addr = "127.0.0.1:0"
	srv.redirect.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case <-srv.Ready():
	case err := <-done:
		t.Fatalf("Run returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not become ready")
	}

	client := &http.Client{
		Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get("https://" + srv.Addr("https") + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "hello pwa")

	resp, err = client.Get("http://" + srv.Addr("http") + "/sw.js")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "https://localhost:"))
	assert.True(t, strings.HasSuffix(resp.Header.Get("Location"), "/sw.js"))

	resp, err = client.Get("http://" + srv.Addr("metrics") + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), `server="static"`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, strings.Join(messages, "\n"), "Server running on https://localhost:")
	assert.Contains(t, strings.Join(messages, "\n"), "Redirect server running on http://localhost:")
	assert.Contains(t, messages, "Servers stopped")
}

func TestServer_RunListenError(t *testing.T) {
	cfg := testConfig(t)
	srv, err := New(cfg, logging.NewNopLogger())
	require.NoError(t, err)

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv.https.Addr = busy.Addr().String()
	err = srv.Run(context.Background())

	var listenErr *errors.ListenError
	assert.True(t, stderrors.As(err, &listenErr), "got %v", err)
}
