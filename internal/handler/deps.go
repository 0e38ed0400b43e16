package handler

import (
	"sangini/internal/app/composer"
	"sangini/internal/app/consult"
	"sangini/internal/app/db"
	"sangini/internal/app/feed"
	"sangini/internal/app/programs"
	"sangini/internal/app/storage"
	"sangini/internal/configs"
)

type AppDeps struct {
	Config   *configs.AppConfig
	DB       *db.Store
	Images   storage.ImageStore
	Feed     *feed.Store
	Programs *programs.Store
	Consults *consult.Manager
	Composer *composer.Store
}
