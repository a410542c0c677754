package controller

import "github.com/huffpack/huffpack/internal/application"

type Controller struct {
	app   *application.Application
	Pack  PackController
	Other OtherController
}

func NewController(
	app *application.Application,
	pack PackController,
	other OtherController,
) *Controller {
	return &Controller{
		app:   app,
		Pack:  pack,
		Other: other,
	}
}

// register routes of pack module
func (c *Controller) RegisterRoutes() {
	// define routes
	c.app.Router.GET("/metrics", c.Other.HandleMetrics)
	c.app.Router.GET("/healthz", c.Other.HandleHealthz)

	c.app.Router.POST("/encode", c.Pack.HandleEncode)
	c.app.Router.POST("/decode", c.Pack.HandleDecode)
}
