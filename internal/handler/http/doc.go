// Package http implements the HTTP transport layer of the portfolio API.
//
// It exposes route wiring, request handlers, and middleware for the REST
// endpoints under /api. Cross-cutting concerns such as authentication,
// request tracing, access logging, and CORS are handled in this package
// before requests are delegated to the service layer.
package http
