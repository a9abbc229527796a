package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the callback signature the processor attaches after a
// successful payment: hex(HMAC-SHA256("<orderID>|<paymentID>", secret)).
func Sign(gatewayOrderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the widget callback against the shared secret in
// constant time. A false result must leave the order untouched.
func VerifySignature(gatewayOrderID, paymentID, signature, secret string) bool {
	expected := Sign(gatewayOrderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
