package domain

import "time"

// User 表示一个校园用户的公开资料。
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	University   string    `json:"university"`
	Age          int       `json:"age,omitempty"`
	PhotoURL     string    `json:"photo_url"`
	Interests    []string  `json:"interests"`
	Skills       []string  `json:"skills"`
	About        string    `json:"about"`
	PortfolioURL string    `json:"portfolio_url,omitempty"`
	InstagramURL string    `json:"instagram_url,omitempty"`
	GithubURL    string    `json:"github_url,omitempty"`
	LinkedinURL  string    `json:"linkedin_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
