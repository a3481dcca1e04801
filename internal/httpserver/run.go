package httpserver

import (
	"context"
	"fmt"
)

// Run wires all routes and starts serving. It blocks until the underlying
// listener stops.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	srv.l.Infof(context.Background(), "HTTP server listening on :%d", srv.port)
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
