package main

import (
	"os"

	"inventory_management/internal/logger"
)

// @title           Inventory Management API
// @version         1.0.0
// @description     Product inventory backend with bearer-token authentication.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and the access token.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Get(logger.ErrorLevel).Errorw("command failed", "err", err)
		os.Exit(1)
	}
}
