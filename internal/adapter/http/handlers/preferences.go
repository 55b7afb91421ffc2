package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/adapter/http/middleware"
	"taskplanner/internal/core/ports"
	"taskplanner/pkg/apierrors"
)

// PreferencesHandler serves display-only preferences the client persists
// verbatim. Dark mode never touches task or session state.
type PreferencesHandler struct {
	kv ports.KVStore
}

func NewPreferencesHandler(kv ports.KVStore) *PreferencesHandler {
	return &PreferencesHandler{kv: kv}
}

func (h *PreferencesHandler) GetDarkMode(c *gin.Context) {
	value, ok, err := h.kv.Get(c.Request.Context(), ports.KeyDarkMode)
	if err != nil {
		zap.L().Warn("failed to read dark mode preference", zap.Error(err))
	}
	c.JSON(http.StatusOK, dto.DarkModeItem{DarkMode: ok && value == "true"})
}

func (h *PreferencesHandler) SetDarkMode(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.DarkModeItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPreference, lang),
		)
		return
	}

	value := "false"
	if req.DarkMode {
		value = "true"
	}
	if err := h.kv.Put(c.Request.Context(), ports.KeyDarkMode, value); err != nil {
		zap.L().Warn("failed to persist dark mode preference", zap.Error(err))
	}

	c.JSON(http.StatusOK, req)
}
