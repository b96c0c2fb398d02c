//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"socialbook/internal/friend"
	"socialbook/internal/post"
	"socialbook/internal/user"
)

type Application struct {
	UserHandler   *user.Handler
	FriendHandler *friend.Handler
	PostHandler   *post.Handler
}

func InitializeApplication(db *gorm.DB) *Application {
	wire.Build(
		user.NewUserRepository,
		user.NewUserService,
		user.NewHandler,
		friend.NewFriendRepository,
		friend.NewFriendService,
		friend.NewHandler,
		post.NewPostRepository,
		post.NewPostService,
		post.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}
}
