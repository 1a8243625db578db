package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"sharix/cmd/fx/account_fx"
	"sharix/cmd/fx/contribution_fx"
	"sharix/cmd/fx/controllers_fx"
	"sharix/cmd/fx/db_fx"
	"sharix/cmd/fx/invite_fx"
	"sharix/cmd/fx/mail_fx"
	"sharix/cmd/fx/sharesetting_fx"
	"sharix/cmd/fx/storage_fx"
	"sharix/cmd/fx/token_fx"
	"sharix/internal/api/controllers"
	"sharix/internal/models/db_models"
	"sharix/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		db_fx.Module,
		token_fx.Module,
		mail_fx.Module,
		storage_fx.Module,
		account_fx.Module,
		invite_fx.Module,
		sharesetting_fx.Module,
		contribution_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + os.Getenv("PORT"),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at %s", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	inviteController *controllers.InviteController,
	contributionController *controllers.ContributionController,
	shareSettingController *controllers.ShareSettingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, inviteController, contributionController, shareSettingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	inviteController *controllers.InviteController,
	contributionController *controllers.ContributionController,
	shareSettingController *controllers.ShareSettingController) {

	accounts := r.Group("/accounts")
	accounts.POST("/login", accountController.Login)

	// Invite acceptance is public: the token is the credential.
	r.POST("/invites/confirm/:token", inviteController.Confirm)

	invites := r.Group("/invites", middleware.JWTAuthMiddleware(), middleware.RequireRoles(db_models.RoleManager))
	invites.POST("", inviteController.Create)
	invites.GET("", inviteController.All)
	invites.GET("/pending", inviteController.Pending)
	invites.GET("/accepted", inviteController.Accepted)

	contributions := r.Group("/contributions", middleware.JWTAuthMiddleware())
	contributions.POST("",
		middleware.RequireRoles(db_models.RoleManager, db_models.RoleBoard, db_models.RoleMember),
		contributionController.Submit)
	contributions.GET("/mine",
		middleware.RequireRoles(db_models.RoleManager, db_models.RoleBoard, db_models.RoleMember),
		contributionController.Mine)
	contributions.PATCH("/approve/:id",
		middleware.RequireRoles(db_models.RoleManager),
		contributionController.Approve)
	contributions.GET("/summary",
		middleware.RequireRoles(db_models.RoleManager),
		contributionController.Summary)

	settings := r.Group("/share-settings", middleware.JWTAuthMiddleware())
	settings.POST("", middleware.RequireRoles(db_models.RoleManager), shareSettingController.Create)
	settings.PATCH("/:id", middleware.RequireRoles(db_models.RoleManager), shareSettingController.Update)
	settings.GET("", middleware.RequireRoles(), shareSettingController.Current)
}
