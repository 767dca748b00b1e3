package routes

// Package routes wires all HTTP routing for the region normalization
// service.
//
// Layout:
// - api.go: versioned API routes (/v1/*) and middleware
// - web.go: root and documentation routes (/, /docs)
