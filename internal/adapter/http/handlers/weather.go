package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskplanner/internal/adapter/http/mapper"
	"taskplanner/internal/adapter/http/middleware"
	"taskplanner/internal/core/ports"
	"taskplanner/pkg/apierrors"
)

type WeatherHandler struct {
	weather ports.WeatherService
}

func NewWeatherHandler(weather ports.WeatherService) *WeatherHandler {
	return &WeatherHandler{weather: weather}
}

func (h *WeatherHandler) GetCurrent(c *gin.Context) {
	lang := middleware.GetLang(c)

	current, err := h.weather.Current(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to fetch current weather", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailWeather, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToWeatherItem(current))
}
