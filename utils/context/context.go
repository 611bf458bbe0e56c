package context

import (
	"context"

	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/model"
)

func WithActor(ctx context.Context, actor model.Actor) context.Context {
	return context.WithValue(ctx, constant.ActorKey, actor)
}

func GetActor(ctx context.Context) (model.Actor, bool) {
	v := ctx.Value(constant.ActorKey)
	if v == nil {
		return model.Actor{}, false
	}
	actor, ok := v.(model.Actor)
	return actor, ok
}
