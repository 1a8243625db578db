package controllers_fx

import (
	"go.uber.org/fx"
	"sharix/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewInviteController,
	controllers.NewContributionController,
	controllers.NewShareSettingController,
)
