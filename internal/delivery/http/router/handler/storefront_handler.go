package handler

import (
	"net/http"

	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StorefrontHandler serves the merchant storefront QR code.
type StorefrontHandler struct {
	storefrontUC usecase.StorefrontUsecase
}

// NewStorefrontHandler is the constructor for StorefrontHandler.
func NewStorefrontHandler(storefrontUC usecase.StorefrontUsecase) *StorefrontHandler {
	return &StorefrontHandler{storefrontUC: storefrontUC}
}

// QRCode returns the PNG QR code of the merchant's storefront.
func (h *StorefrontHandler) QRCode(c echo.Context) error {
	merchantID, err := queryID(c, "idMerchant")
	if err != nil {
		return err
	}

	png, err := h.storefrontUC.StorefrontQR(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
