package response

import "github.com/gin-gonic/gin"

// OK wraps a payload under its resource key in the standard success envelope.
func OK(key string, payload any) gin.H {
	return gin.H{"success": true, key: payload}
}

// Created echoes a stored record together with a confirmation message.
func Created(key string, payload any, message string) gin.H {
	return gin.H{"success": true, "message": message, key: payload}
}

// Message is a success envelope without a payload.
func Message(message string) gin.H {
	return gin.H{"success": true, "message": message}
}

// Error is the standard failure envelope. No partial data accompanies it.
func Error(message string) gin.H {
	return gin.H{"success": false, "message": message}
}
