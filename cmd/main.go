package cmd

import (
	"github.com/orchardctl/cli/configs"
	"github.com/orchardctl/cli/controller"
)

type Handler struct {
	ctrl *controller.Controller
	cfg  *configs.Configs
}

func New() *Handler {
	return &Handler{
		ctrl: controller.New(),
		cfg:  configs.New(),
	}
}
