package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vpetrenko/go-identity-server/internal/config"
	"github.com/vpetrenko/go-identity-server/internal/handler"
	"github.com/vpetrenko/go-identity-server/internal/logger"
)

func TestNewServer_HTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}
