package dto

type ToggleLikeResponse struct {
	IsLiked    bool  `json:"isLiked"`
	TotalLikes int64 `json:"totalLikes"`
}

type ToggleSubscriptionResponse struct {
	IsSubscribed     bool  `json:"isSubscribed"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}

type TogglePublishResponse struct {
	IsPublished bool `json:"isPublished"`
}
