package token_fx

import (
	"os"

	"go.uber.org/fx"
	"sharix/pkg/utils"
)

var Module = fx.Provide(provideInviteTokenIssuer)

func provideInviteTokenIssuer() *utils.InviteTokenIssuer {
	return utils.NewInviteTokenIssuer(os.Getenv("JWT_SECRET"), utils.InviteTokenTTL)
}
