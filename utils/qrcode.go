package utils

import (
	"fmt"
	"net/url"

	"reviu-server/config"
)

// WaiterFeedbackURL builds the customer deep link that pre-binds a wizard
// session to a waiter.
func WaiterFeedbackURL(baseURL, tenantID, waiterID string) string {
	return fmt.Sprintf("%s?t=%s&wtr=%s", baseURL, url.QueryEscape(tenantID), url.QueryEscape(waiterID))
}

// QRCodeImageURL builds the third-party QR image URL for a deep link.
// Rendering the image itself is delegated to the external service.
func QRCodeImageURL(target string) string {
	return fmt.Sprintf("%s?size=300x300&data=%s", config.AppConfig.Review.QRCodeBaseURL, url.QueryEscape(target))
}
