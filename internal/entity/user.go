package entity

const UserStatusOnline = "online"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Status   string `json:"status,omitempty"`
}
