package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
	RoleThekedar Role = "thekedar"
	RoleAdmin    Role = "admin"
	RoleSystem   Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleWorker, RoleThekedar, RoleAdmin:
		return true
	}
	return false
}

// CanWork reports whether users with this role may hold a worker profile.
func (r Role) CanWork() bool {
	return r == RoleWorker || r == RoleThekedar
}

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

type User struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	Role           Role      `json:"role"`
	Language       Language  `json:"language"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	FullName       string
	Phone          string
	Role           Role
	Language       Language
	TelegramChatID *int64
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Role Role
}

// SystemActor drives transitions that no user initiated, such as dispatch.
var SystemActor = Actor{ID: "system", Role: RoleSystem}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSystem
}
