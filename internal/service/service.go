package service

import (
	"message_board/internal/repository"
)

type Services struct {
	Message *MessageService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Message: NewMessageService(repos.Message),
	}
}
