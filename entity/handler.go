package entity

import "context"

type HandlerFunction func(context.Context, *CommandRequest) error

type PanicFunction func(ctx context.Context, recovered interface{}, stack string, command string, args []string)
