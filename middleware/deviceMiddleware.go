package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const deviceCookie = "unicart_device"

// 180 days; session state for an idle device ages out of Redis well before.
const deviceCookieMaxAge = 180 * 24 * 60 * 60

// Device assigns every browser a stable device id cookie. Carts and the
// recent-order list key off it, so it must exist before any cart call.
func Device() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID, err := c.Cookie(deviceCookie)
		if err != nil || deviceID == "" {
			deviceID = uuid.NewString()
			c.SetCookie(deviceCookie, deviceID, deviceCookieMaxAge, "/", "", false, true)
		}
		c.Set("device_id", deviceID)
		c.Next()
	}
}
