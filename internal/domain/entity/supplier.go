package entity

import "time"

// Supplier is a vendor parts are purchased from.
type Supplier struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	ContactInfo string    `bson:"contact_info"`
	CreatedAt   time.Time `bson:"created_at"`
}
