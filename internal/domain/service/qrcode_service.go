package service

// QRCodeService renders and reads the QR codes printed in merchant shops.
type QRCodeService interface {
	// GenerateStorefrontQR encodes the storefront URL of merchantID as a PNG.
	GenerateStorefrontQR(merchantID int64) ([]byte, error)
	ParseStorefrontURL(data string) (int64, error)
}
