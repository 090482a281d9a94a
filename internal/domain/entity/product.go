package entity

import (
	"time"
)

// Product is the catalogue record as seen by the like subsystem. The
// catalogue owns the descriptive fields; this service owns LikeCount,
// LikedBy and LastLikeActivityAt and is the only writer of them.
//
// LikedBy is internal membership state and is never serialized to clients.
type Product struct {
	ID          string  `bson:"_id,omitempty" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	ImageURL    *string `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CharityID   *string `bson:"charity_id,omitempty" json:"charity_id,omitempty"`
	SellerID    string  `bson:"seller_id" json:"seller_id"`

	// LikeCount caches len(LikedBy) so reads never have to load the set.
	// Records created before the like feature may lack both fields in the
	// database; the zero values (0, nil) are the correct defaults.
	LikeCount          int       `bson:"like_count" json:"-"`
	LikedBy            []string  `bson:"liked_by" json:"-"`
	LastLikeActivityAt time.Time `bson:"last_like_activity_at" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsLikedBy reports whether userID is currently a member of the like set.
// A nil set reads as empty.
func (p *Product) IsLikedBy(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
