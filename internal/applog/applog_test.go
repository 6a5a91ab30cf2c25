package applog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Default(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_Production(t *testing.T) {
	logger, err := New(ProductionConfig())
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
