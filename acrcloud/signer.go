package acrcloud

import (
	"crypto/hmac"
	"crypto/sha1" // nolint:gosec
	"encoding/base64"
	"strings"
)

const (
	httpMethod       = "POST"
	httpURI          = "/v1/identify"
	dataType         = "audio"
	signatureVersion = "1"
)

// Sign computes the request signature expected by the identification endpoint
func Sign(method, uri, accessKey, dataType, signatureVersion, timestamp, secret string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write([]byte(strings.Join([]string{method, uri, accessKey, dataType, signatureVersion, timestamp}, "\n")))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
