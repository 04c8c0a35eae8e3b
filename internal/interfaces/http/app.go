package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/stock-api/pkg/logger"
)

//go:embed views/*.html
var viewsFS embed.FS

// AppOptions opciones de construcción de la app Fiber.
type AppOptions struct {
	Name        string
	CORSOrigins string // lista separada por comas; "*" por defecto
	Log         *logger.Logger
}

// NewApp crea la app Fiber con vistas embebidas, log de peticiones, recover y CORS.
func NewApp(opts AppOptions) *fiber.App {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}

	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("vistas embebidas: " + err.Error())
	}

	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		Views:        html.NewFileSystem(nethttp.FS(views), ".html"),
		ErrorHandler: errorHandler(log),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))
	return app
}
