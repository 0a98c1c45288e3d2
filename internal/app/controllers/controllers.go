// Package controllers handles HTTP request handling
package controllers

import (
	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/contribtrack/internal/app/auth"
	"github.com/yigit/contribtrack/internal/middleware"
)

// requireCaller returns the authenticated caller or writes a 401
func requireCaller(ctx *gin.Context) (*appauth.Caller, bool) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, appauth.ErrUnauthenticated)
		return nil, false
	}
	return caller, true
}
