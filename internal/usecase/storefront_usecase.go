package usecase

import "context"

// StorefrontUsecase serves merchant storefront assets.
type StorefrontUsecase interface {
	// StorefrontQR returns the PNG QR code of the merchant's storefront URL.
	StorefrontQR(ctx context.Context, merchantID int64) ([]byte, error)
}
