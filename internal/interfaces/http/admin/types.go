package admin

import "github.com/salon-id/hair-design-review/api/internal/domain"

type uploadResponse struct {
	Count int `json:"count"`
}

type statusResponse struct {
	StylistCount         int64                  `json:"stylistCount"`
	ReviewCount          int64                  `json:"reviewCount"`
	ImageCount           int64                  `json:"imageCount"`
	OwnerEmailConfigured bool                   `json:"ownerEmailConfigured"`
	Stylists             []domain.StylistRecord `json:"stylists"`
	RecentReviews        []domain.ReviewRecord  `json:"recentReviews"`
}

type ownerEmailRequest struct {
	OwnerEmail string `json:"ownerEmail"`
}

type ownerEmailResponse struct {
	OwnerEmail string `json:"ownerEmail"`
}

type mappingRequest struct {
	Mapping map[string]string `json:"mapping"`
}

type mappingResponse struct {
	Kind    string            `json:"kind"`
	Mapping map[string]string `json:"mapping"`
}
