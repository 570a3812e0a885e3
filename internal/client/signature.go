package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayment computes the gateway's checkout signature over
// "<orderID>|<paymentID>" with the key secret, hex encoded.
func SignPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature reports whether the signature forwarded by the
// client matches the one the gateway would have produced. The signature
// arrives through the browser and is the sole trust boundary for payment
// confirmation; hmac.Equal keeps the comparison constant time.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	expected := SignPayment(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
