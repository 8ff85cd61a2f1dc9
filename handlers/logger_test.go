package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/yihao03/Aistronaut/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetLoggerPrefersContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	scoped := zap.NewNop().With(zap.String("path", "/api/chat"))
	c.Set("logger", scoped)

	assert.Same(t, scoped, getLogger(c))
}

func TestGetLoggerFallsBackToGlobal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Same(t, utils.GetLogger(), getLogger(c))
}

func TestGetLoggerIgnoresWrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("logger", "not a logger")

	assert.Same(t, utils.GetLogger(), getLogger(c))
}
