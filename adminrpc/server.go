package adminrpc

import (
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const sessionName = "squeaknode-admin"
const sessionUserKey = "username"

// sessionMaxAgeSecs and rememberedSessionMaxAgeSecs are the two cookie
// lifetimes POST /login's remember_me field chooses between: a
// session-scoped cookie that expires when the browser closes versus a
// 30-day persistent one.
const (
	sessionMaxAgeSecs           = 0
	rememberedSessionMaxAgeSecs = 30 * 24 * 60 * 60
)

// maxRequestBody caps a dispatched endpoint's protobuf body, matching
// the message-size ceiling the teacher's own gRPC server imposes via
// grpc.MaxRecvMsgSize in rpcserver.go.
const maxRequestBody = 4 << 20

// ServerConfig carries everything server.go needs beyond the Handler
// itself: credentials, the session secret, and the escape hatches
// spec §6 calls out (CORS for local web development, disabling login
// entirely for a trusted LAN deployment, adhoc self-signed TLS).
type ServerConfig struct {
	Handler *Handler

	Username string
	Password string

	// SessionKey authenticates the login cookie. It must be stable
	// across restarts or every existing session is invalidated.
	SessionKey []byte

	// AllowCORS, when true, answers every preflight with
	// Access-Control-Allow-Origin: * for local web-client development.
	AllowCORS bool

	// LoginDisabled, when true, skips the session check entirely. Meant
	// for a node only reachable over localhost or a private network.
	LoginDisabled bool

	// TLSCert is the path to the admin server's TLS certificate, set by
	// the caller once EnsureSelfSignedCert (or a real cert) has put one
	// there. A non-empty value marks the deployment as HTTPS-only for
	// the purpose of the session cookie's Secure flag.
	TLSCert string
}

// NewRouter builds the gin router fronting a Handler: session-cookie
// login at POST /login and GET /logout, one POST route per dispatch-table
// endpoint at its own top-level path per spec §6 ("POST /<endpoint>"),
// and a GET / (exact path only) that answers with a plain-text
// placeholder where an SPA's index.html would be served (mirroring spec
// §6's "a static single-page client shell").
func NewRouter(cfg ServerConfig) *gin.Engine {
	store := sessions.NewCookieStore(cfg.SessionKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAgeSecs,
		HttpOnly: true,
		Secure:   cfg.TLSCert != "",
		SameSite: http.SameSiteStrictMode,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(zapLogger())

	if cfg.AllowCORS {
		router.Use(corsMiddleware())
	}

	router.POST("/login", loginHandler(cfg, store))
	router.GET("/logout", logoutHandler(store))
	for name := range endpoints {
		router.POST("/"+name, apiHandler(cfg, store, name))
	}
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "squeaknode admin")
	})

	return router
}

func zapLogger() gin.HandlerFunc {
	logger, _ := zap.NewProduction()
	return func(c *gin.Context) {
		c.Next()
		logger.Info("admin request",
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func loginHandler(cfg ServerConfig, store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")
		if username != cfg.Username || password != cfg.Password {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		session, err := store.Get(c.Request, sessionName)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if rememberMe, _ := strconv.ParseBool(c.PostForm("remember_me")); rememberMe {
			opts := *session.Options
			opts.MaxAge = rememberedSessionMaxAgeSecs
			session.Options = &opts
		}
		session.Values[sessionUserKey] = username
		if err := session.Save(c.Request, c.Writer); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	}
}

func logoutHandler(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Request, sessionName)
		if err == nil {
			delete(session.Values, sessionUserKey)
			session.Options.MaxAge = -1
			session.Save(c.Request, c.Writer)
		}
		c.Status(http.StatusOK)
	}
}

func isAuthenticated(store sessions.Store, c *gin.Context) bool {
	session, err := store.Get(c.Request, sessionName)
	if err != nil {
		return false
	}
	_, ok := session.Values[sessionUserKey]
	return ok
}

// apiHandler decodes the protobuf-encoded body, dispatches through
// Handler.Handle, and writes back the protobuf-encoded response per
// spec §6. name is fixed per-route at registration time in NewRouter;
// everything else it needs to know about the endpoint lives in the
// endpoints table in dispatch.go.
func apiHandler(cfg ServerConfig, store sessions.Store, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.LoginDisabled && !isAuthenticated(store, c) {
			c.Redirect(http.StatusFound, "/login")
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody)
		body, err := ioutil.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithError(http.StatusRequestEntityTooLarge, err)
			return
		}

		resp, err := cfg.Handler.Handle(c.Request.Context(), name, body)
		if err != nil {
			log.Errorf("%s: %v", name, err)
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		c.Data(http.StatusOK, "application/x-protobuf", resp)
	}
}
