package server_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/async-pool-agent/internal/config"
	"github.com/kubev2v/async-pool-agent/internal/server"
)

const secret = "s3cr3t"

func sign(key string, claims jwt.MapClaims, method jwt.SigningMethod) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	Expect(err).NotTo(HaveOccurred())
	return token
}

func registerPing(router *gin.RouterGroup) {
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
}

var _ = Describe("Server", func() {
	var cfg *config.Configuration

	BeforeEach(func() {
		cfg = config.NewConfigurationWithOptionsAndDefaults()
	})

	get := func(srv *server.Server, path, token string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		srv.Handler().ServeHTTP(w, req)
		return w
	}

	Context("without authentication", func() {
		It("should serve health and api routes", func() {
			srv, err := server.NewServer(cfg, registerPing)
			Expect(err).NotTo(HaveOccurred())

			Expect(get(srv, "/health", "").Code).To(Equal(http.StatusOK))
			w := get(srv, "/api/v1/ping", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("pong"))
		})

		It("should answer unknown routes with a JSON 404", func() {
			srv, err := server.NewServer(cfg, registerPing)
			Expect(err).NotTo(HaveOccurred())

			w := get(srv, "/api/v1/nope", "")

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("not found"))
		})

		// Given a handler that panics
		// When it is called
		// Then the recovery middleware answers 500 and the server survives
		It("should recover from handler panics", func() {
			srv, err := server.NewServer(cfg, registerPing)
			Expect(err).NotTo(HaveOccurred())

			Expect(get(srv, "/api/v1/panic", "").Code).To(Equal(http.StatusInternalServerError))
			Expect(get(srv, "/api/v1/ping", "").Code).To(Equal(http.StatusOK))
		})
	})

	Context("with authentication", func() {
		var srv *server.Server

		BeforeEach(func() {
			path := filepath.Join(GinkgoT().TempDir(), "secret")
			Expect(os.WriteFile(path, []byte(secret+"\n"), 0o600)).To(Succeed())

			cfg.Server.Auth = config.Authentication{Enabled: true, SecretFile: path}

			var err error
			srv, err = server.NewServer(cfg, registerPing)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should keep health open", func() {
			Expect(get(srv, "/health", "").Code).To(Equal(http.StatusOK))
		})

		It("should reject a request without a token", func() {
			Expect(get(srv, "/api/v1/ping", "").Code).To(Equal(http.StatusUnauthorized))
		})

		It("should accept a valid token", func() {
			token := sign(secret, jwt.MapClaims{"sub": "ops", "exp": time.Now().Add(time.Minute).Unix()}, jwt.SigningMethodHS256)

			Expect(get(srv, "/api/v1/ping", token).Code).To(Equal(http.StatusOK))
		})

		DescribeTable("should reject invalid tokens",
			func(token func() string) {
				Expect(get(srv, "/api/v1/ping", token()).Code).To(Equal(http.StatusUnauthorized))
			},
			Entry("wrong secret", func() string {
				return sign("other", jwt.MapClaims{"sub": "ops"}, jwt.SigningMethodHS256)
			}),
			Entry("expired", func() string {
				return sign(secret, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()}, jwt.SigningMethodHS256)
			}),
			Entry("other algorithm", func() string {
				return sign(secret, jwt.MapClaims{"sub": "ops"}, jwt.SigningMethodHS512)
			}),
			Entry("garbage", func() string { return "not-a-jwt" }),
		)

		It("should fail when the secret file is missing", func() {
			cfg.Server.Auth.SecretFile = filepath.Join(GinkgoT().TempDir(), "missing")

			_, err := server.NewServer(cfg, registerPing)

			Expect(err).To(HaveOccurred())
		})
	})

	Context("lifecycle", func() {
		It("should start and stop gracefully", func() {
			l, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).NotTo(HaveOccurred())
			cfg.Server.HTTPPort = l.Addr().(*net.TCPAddr).Port
			Expect(l.Close()).To(Succeed())

			srv, err := server.NewServer(cfg, registerPing)
			Expect(err).NotTo(HaveOccurred())

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start(context.Background()) }()

			Eventually(func() error {
				resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Server.HTTPPort))
				if err != nil {
					return err
				}
				resp.Body.Close()
				return nil
			}).WithTimeout(2 * time.Second).Should(Succeed())

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			Expect(srv.Stop(ctx)).To(Succeed())
			Eventually(errCh).Should(Receive(BeNil()))
		})
	})
})
