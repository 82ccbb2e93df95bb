// Package router registra as rotas da API sobre o httprouter.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Middleware envolve um handler de rota
type Middleware func(http.Handler) http.Handler

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware // aplicados só nesta rota, na ordem declarada
}

type Router struct {
	mux *httprouter.Router
}

type ConfigRouter func(router *Router)

// WithRoutes registra um grupo de rotas
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// WithNotFound define a resposta para rotas inexistentes
func WithNotFound(handler http.Handler) ConfigRouter {
	return func(router *Router) {
		router.mux.NotFound = handler
	}
}

// WithMethodNotAllowed define a resposta para rota existente com método errado
func WithMethodNotAllowed(handler http.Handler) ConfigRouter {
	return func(router *Router) {
		router.mux.HandleMethodNotAllowed = true
		router.mux.MethodNotAllowed = handler
	}
}

func New(configs ...ConfigRouter) *Router {
	mux := httprouter.New()
	// o preflight CORS é respondido pelo middleware antes do roteador
	mux.HandleOPTIONS = false

	router := &Router{mux: mux}
	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// AddRoutes registra cada rota já envolvida pelos seus middlewares
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.mux.Handler(route.Method, route.Path, chain(route.Handler, route.Middlewares))
	}
}

// chain aplica middlewares de forma que o primeiro da lista seja o mais externo
func chain(handler http.Handler, middlewares []Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
