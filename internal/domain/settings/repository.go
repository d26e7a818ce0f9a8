package settings

import "context"

type Repository interface {
	Settings(ctx context.Context) AppSettings
	UpdateSettings(ctx context.Context, fn func(AppSettings) (AppSettings, error)) error
}
