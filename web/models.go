package web

import (
	"github.com/sirupsen/logrus"

	"clancup-bot/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr   string
	API    *api.API
	Logger *logrus.Logger
}

// Server exposes read-only views of the tournament over HTTP
type Server struct {
	api    *api.API
	logger *logrus.Logger
}
