package logger_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"ayuvibe-server/internal/logger"
)

func TestInitSetsLevel(t *testing.T) {
	logger.Init("debug")
	assert.Equal(t, logrus.DebugLevel, logger.Log.GetLevel())
}

func TestInitFallsBackToInfo(t *testing.T) {
	logger.Init("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logger.Log.GetLevel())

	logger.Init("")
	assert.Equal(t, logrus.InfoLevel, logger.Log.GetLevel())
}
