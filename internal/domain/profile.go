package domain

// Profile is the single user profile object.
type Profile struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURI string `json:"avatarUri"`
	Bio       string `json:"bio,omitempty"`
}

// BudgetConfig holds the global spending limit. AlertThreshold is a
// percentage of TotalLimit.
type BudgetConfig struct {
	TotalLimit     float64 `json:"totalLimit"`
	AlertThreshold float64 `json:"alertThreshold"`
	AlertEnabled   bool    `json:"alertEnabled"`
}
