package models

import (
	"encoding/base64"
	"time"
)

// PhotoCount is the number of photos every surprise carries.
const PhotoCount = 5

// Photo is one normalized image embedded in the surprise document.
// Data holds the JPEG bytes base64-encoded, so the whole record
// serializes to a single JSON document.
type Photo struct {
	ContentType string `json:"contentType"` // always "image/jpeg" after normalization
	Data        string `json:"data"`
}

// NewPhoto wraps normalized JPEG bytes into the embedded document form.
func NewPhoto(jpeg []byte) Photo {
	return Photo{
		ContentType: "image/jpeg",
		Data:        base64.StdEncoding.EncodeToString(jpeg),
	}
}

// Surprise is the sole persisted entity. It is immutable after creation:
// there is no update or delete path.
type Surprise struct {
	ID          string    `json:"id"`
	SecretKey   string    `json:"secretKey"` // stored, not checked by any endpoint
	PartnerName string    `json:"partnerName"`
	SenderName  string    `json:"senderName"`
	Photos      []Photo   `json:"photos"`
	CreatedAt   time.Time `json:"createdAt"`
}
