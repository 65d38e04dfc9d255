//go:build unit

package builder

import (
	"tripdesk/internal/infra/upstream"
)

type UserBuilder struct {
	ID       int
	Name     string
	Email    string
	Phone    string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       1,
		Name:     "Aisha Khan",
		Email:    "aisha@example.com",
		Phone:    "+971500000001",
		IsActive: true,
	}
}

func (b *UserBuilder) WithID(id int) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPhone(phone string) *UserBuilder {
	b.Phone = phone
	return b
}

func (b *UserBuilder) Blocked() *UserBuilder {
	b.IsActive = false
	return b
}

func (b *UserBuilder) Build() upstream.User {
	return upstream.User{
		ID:       b.ID,
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
		IsActive: b.IsActive,
	}
}
