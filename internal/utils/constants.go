package utils

import "time"

// Application Constants
const (
	AppName    = "RoadTrip"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency   = "AUD"
	DefaultTimeZone   = "UTC"
	DefaultVisibility = "private"

	// Authentication
	JWTAccessTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength = 6

	// Trip planning
	DefaultVehicleType = "petrol"
	DefaultPassengers  = 1
	DefaultBufferPct   = 10
	MaxBufferPct       = 30
	DefaultPOIPadding  = 0.04

	// Feed and groups
	FeedLimit      = 50
	GroupListLimit = 100

	// Vlog
	DefaultDailySecondsPerImage = 3.0
	DefaultFinalSecondsPerImage = 2.0
	VideoFrameRate              = 24
	ThumbnailWidth              = 320

	// File Upload
	MaxImageSize = 10 * 1024 * 1024 // 10MB
)

// Response status
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrValidationFailed   = "Validation failed"
	ErrInternalServer     = "Internal server error"
	ErrUnauthorized       = "Unauthorized access"
	ErrForbidden          = "Access forbidden"
	ErrInvalidCredentials = "Invalid email or password"
	ErrEmailExists        = "Email already exists"
)

// Allowed file types
var (
	AllowedImageTypes = []string{"jpg", "jpeg", "png", "webp"}
)
