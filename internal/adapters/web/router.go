package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/arpitthool/image-transform-web/internal/adapters/storage"
	"github.com/arpitthool/image-transform-web/internal/core/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

const defaultMaxUploadSize = 16 << 20

// Server carries the dependencies of the web routes.
type Server struct {
	store   *storage.UploadStore
	service service.Transformer
}

func NewServer(store *storage.UploadStore, service service.Transformer) *Server {
	return &Server{store: store, service: service}
}

// NewRouter assembles the gin engine: embedded templates, CORS, the upload
// size cap and all routes.
func NewRouter(server *Server, maxUploadSize int64) (*gin.Engine, error) {
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	engine := gin.Default()
	engine.MaxMultipartMemory = maxUploadSize
	engine.SetHTMLTemplate(tmpl)

	engine.Use(
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		}),
		requestSizeLimiter(maxUploadSize),
	)

	engine.GET("/", server.handleIndex)
	engine.POST("/upload", server.handleUpload)
	engine.GET("/view/:filename", server.handleView)
	engine.POST("/view/:filename/grayscale", server.handleConvert)
	engine.GET("/uploads/:filename", server.handleUploadedFile)
	engine.GET("/health", handleHealth)
	engine.POST("/image/transform/grayscale", server.handleTransform)

	return engine, nil
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "image transform server is running",
	})
}
