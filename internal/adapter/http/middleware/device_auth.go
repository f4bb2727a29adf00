package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lavaja/internal/config"
	"lavaja/internal/usecase/interfaces"
	"lavaja/pkg"
)

// ContextGatewayKey is where DeviceAuth stores the authenticated gateway for
// downstream handlers.
const ContextGatewayKey = "device_gateway"

const (
	headerSerial    = "X-Device-Serial"
	headerTimestamp = "X-Device-Timestamp"
	headerSignature = "X-Device-Signature"
)

// DeviceAuth authenticates gateway requests with a shared-secret HMAC.
//
// The signature covers serial + "." + timestamp + "." + raw body, so a
// captured request cannot be replayed against another gateway, with another
// payload or outside the accepted clock-skew window.
func DeviceAuth(fleetRepo interfaces.IFleetRepository, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		serial := c.GetHeader(headerSerial)
		ts := c.GetHeader(headerTimestamp)
		sig := c.GetHeader(headerSignature)
		if serial == "" || ts == "" || sig == "" {
			log.Printf("[device][auth] missing headers serial=%q path=%s", serial, c.FullPath())
			abortDeviceAuth(c, http.StatusUnauthorized, "DEVICE_UNAUTHORIZED", "Missing device authentication headers")
			return
		}

		epoch, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			log.Printf("[device][auth] bad timestamp serial=%s ts=%q", serial, ts)
			abortDeviceAuth(c, http.StatusUnauthorized, "DEVICE_UNAUTHORIZED", "Invalid device timestamp")
			return
		}
		skew := time.Since(time.Unix(epoch, 0))
		if skew < 0 {
			skew = -skew
		}
		if skew > cfg.DeviceHMACMaxSkew {
			log.Printf("[device][auth] stale timestamp serial=%s skew=%s", serial, skew)
			abortDeviceAuth(c, http.StatusUnauthorized, "DEVICE_STALE_TIMESTAMP", "Device timestamp outside accepted window")
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			log.Printf("[device][auth] body read failed serial=%s err=%v", serial, err)
			abortDeviceAuth(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
			return
		}
		// Handlers still need the body after the signature check.
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		gw, err := fleetRepo.GetGatewayBySerial(c.Request.Context(), serial)
		if err != nil {
			log.Printf("[device][auth] gateway lookup failed serial=%s err=%v", serial, err)
			abortDeviceAuth(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
			return
		}
		if gw.ID == "" || gw.Secret == "" {
			log.Printf("[device][auth] unknown gateway serial=%s", serial)
			abortDeviceAuth(c, http.StatusUnauthorized, "DEVICE_UNAUTHORIZED", "Unknown device")
			return
		}

		if !validSignature(gw.Secret, serial, ts, body, sig) {
			log.Printf("[device][auth] signature mismatch serial=%s gateway_id=%s", serial, gw.ID)
			abortDeviceAuth(c, http.StatusUnauthorized, "DEVICE_UNAUTHORIZED", "Invalid device signature")
			return
		}

		if !gw.Active {
			log.Printf("[device][auth] inactive gateway serial=%s gateway_id=%s", serial, gw.ID)
			abortDeviceAuth(c, http.StatusForbidden, "DEVICE_INACTIVE", "Device is deactivated")
			return
		}

		c.Set(ContextGatewayKey, gw)
		c.Next()
	}
}

func validSignature(secret, serial, ts string, body []byte, got string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(serial))
	mac.Write([]byte("."))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(want), []byte(got))
}

func abortDeviceAuth(c *gin.Context, status int, code, message string) {
	appErr := pkg.NewDomainErrorSimple(code, message, status)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
