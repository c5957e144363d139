// Package qrcode renders the storefront QR codes merchants display in store.
package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	storefrontPath = "/shop/"
)

// recoveryLevels maps the configured letter onto the encoder level. The
// encoder calls Q "High" and H "Highest".
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type storefrontQR struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(0, "", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService falls back to 256px and level M for unset or unknown values.
func NewQRCodeService(size int, level, baseURL string) service.QRCodeService {
	s := &storefrontQR{size: size, level: qrcode.Medium, baseURL: strings.TrimRight(baseURL, "/")}
	if s.size <= 0 {
		s.size = defaultSize
	}
	if l, ok := recoveryLevels[strings.ToUpper(level)]; ok {
		s.level = l
	}

	return s
}

// StorefrontURL is the link encoded in a merchant's QR code.
func (s *storefrontQR) StorefrontURL(merchantID int64) string {
	return s.baseURL + storefrontPath + strconv.FormatInt(merchantID, 10)
}

func (s *storefrontQR) GenerateStorefrontQR(merchantID int64) ([]byte, error) {
	png, err := qrcode.Encode(s.StorefrontURL(merchantID), s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode storefront QR for merchant %d", merchantID)
	}

	return png, nil
}

// ParseStorefrontURL reads the merchant id back from a scanned link. Any host
// is accepted so codes keep working after a domain change.
func (s *storefrontQR) ParseStorefrontURL(data string) (int64, error) {
	u, err := url.Parse(strings.TrimSpace(data))
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse storefront URL")
	}

	_, tail, found := strings.Cut(u.Path, storefrontPath)
	if !found {
		return 0, errors.Errorf("not a storefront URL: %s", data)
	}

	merchantID, err := strconv.ParseInt(strings.TrimSuffix(tail, "/"), 10, 64)
	if err != nil || merchantID <= 0 {
		return 0, errors.Errorf("no merchant id in %s", data)
	}

	return merchantID, nil
}
