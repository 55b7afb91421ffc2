package mapper

import (
	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem(user)
}

func ToSessionItem(user domain.User, authenticated bool) dto.SessionItem {
	if !authenticated {
		return dto.SessionItem{}
	}
	item := ToUserItem(user)
	return dto.SessionItem{Authenticated: true, User: &item}
}
