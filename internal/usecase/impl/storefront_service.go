package impl

import (
	"context"

	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/pkg/errors"
)

// storefrontService implements the StorefrontUsecase interface.
type storefrontService struct {
	userRepo repository.UserRepository
	qrCodes  service.QRCodeService
}

// NewStorefrontService is the constructor for storefrontService.
func NewStorefrontService(userRepo repository.UserRepository, qrCodes service.QRCodeService) usecase.StorefrontUsecase {
	return &storefrontService{userRepo: userRepo, qrCodes: qrCodes}
}

func (srv *storefrontService) StorefrontQR(ctx context.Context, merchantID int64) ([]byte, error) {
	if _, err := requireMerchant(ctx, srv.userRepo, merchantID); err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateStorefrontQR(merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR code")
	}

	return png, nil
}
